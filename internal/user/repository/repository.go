package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"opos-parking/internal/database"
	"opos-parking/internal/user/model"
	appErrors "opos-parking/pkg/errors"
)

type UserRepository struct {
	db *database.Database
}

func NewRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// active returns the base query every default read goes through. Soft-deleted
// users are only reachable via the AnyStatus lookups.
func (r *UserRepository) active(ctx context.Context) *gorm.DB {
	return r.db.DB.WithContext(ctx).Where("is_deleted = ?", false)
}

func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if err := r.db.DB.WithContext(ctx).Create(user).Error; err != nil {
		errStr := strings.ToLower(err.Error())
		if strings.Contains(errStr, "duplicate key") && strings.Contains(errStr, "email") {
			return appErrors.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.active(ctx).First(&user, "id = ?", userID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.active(ctx).Where("email = ?", email).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByEmailAnyStatus bypasses the soft-delete filter. Used by signup so
// that a soft-deleted account keeps its email reserved.
func (r *UserRepository) GetUserByEmailAnyStatus(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.active(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUserByResetToken matches a hashed reset token that has not expired.
func (r *UserRepository) GetUserByResetToken(ctx context.Context, hashedToken string) (*model.User, error) {
	var user model.User
	err := r.active(ctx).
		Where("password_reset_token = ? AND password_reset_expires > ?", hashedToken, time.Now()).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrResetToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by reset token: %w", err)
	}
	return &user, nil
}

// UpdateProfile persists the whitelisted self-service fields only.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *model.User) error {
	user.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND is_deleted = ?", user.ID, false).
		Updates(map[string]interface{}{
			"name":       user.Name,
			"image_url":  user.ImageURL,
			"updated_at": user.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrUserNotFound
	}

	return nil
}

// UpdatePassword writes the new hash, the change timestamp and the (cleared)
// reset token fields in one statement.
func (r *UserRepository) UpdatePassword(ctx context.Context, user *model.User) error {
	result := r.db.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"password_hashed":        user.PasswordHashed,
			"password_changed_at":    user.PasswordChangedAt,
			"password_reset_token":   user.PasswordResetToken,
			"password_reset_expires": user.PasswordResetExpires,
			"updated_at":             time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

// SaveResetToken persists only the reset-token pair, leaving every other
// field untouched. Also used to roll the pair back after a failed send.
func (r *UserRepository) SaveResetToken(ctx context.Context, user *model.User) error {
	result := r.db.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"password_reset_token":   user.PasswordResetToken,
			"password_reset_expires": user.PasswordResetExpires,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to save reset token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

// SoftDelete flips the deletion flag; the row is never physically removed.
func (r *UserRepository) SoftDelete(ctx context.Context, userID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND is_deleted = ?", userID, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to soft delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}
