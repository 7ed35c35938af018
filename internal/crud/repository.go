package crud

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"opos-parking/internal/database"
)

// Repository provides the shared create/read/delete plumbing used by every
// resource that does not need bespoke SQL. Callers map gorm.ErrRecordNotFound
// to their own sentinel.
type Repository[T any] struct {
	db *database.Database
}

func NewRepository[T any](db *database.Database) *Repository[T] {
	return &Repository[T]{db: db}
}

func (r *Repository[T]) DB() *gorm.DB {
	return r.db.DB
}

func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.DB.WithContext(ctx).Create(entity).Error
}

func (r *Repository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	if err := r.db.DB.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *Repository[T]) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*T, error) {
	tx := r.db.DB.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *Repository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	tx := r.db.DB.WithContext(ctx).Delete(new(T), "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsNotFound reports whether err means the row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
