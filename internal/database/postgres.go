package database

import (
	"fmt"
	"time"

	"opos-parking/internal/config"
	locationModel "opos-parking/internal/location/model"
	userModel "opos-parking/internal/user/model"

	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(cfg *config.Config) (*Database, error) {
	dsn := cfg.Database.DSN()

	logMode := logger.Info
	if cfg.Server.IsProduction() {
		logMode = logger.Warn
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return &Database{DB: db}, nil
}

// Migrate creates the schema and the indexes the geo queries depend on.
func (d *Database) Migrate() error {
	if err := d.DB.AutoMigrate(
		&userModel.User{},
		&locationModel.Location{},
		&locationModel.Zone{},
	); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	// Composite coordinate index standing in for the document store's sphere
	// index; the haversine scans filter on both columns.
	if err := d.DB.Exec(
		"CREATE INDEX IF NOT EXISTS idx_locations_lat_lng ON locations (latitude, longitude)",
	).Error; err != nil {
		return fmt.Errorf("create geo index failed: %w", err)
	}

	return nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) Health() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
