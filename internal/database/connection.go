// internal/database/connection.go
package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aryals/dealer-backend/internal/config"
	"github.com/aryals/dealer-backend/internal/models"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("Database connection established successfully")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.Vehicle{},
		&models.VehicleImage{},
		&models.Brand{},
		&models.BannerImage{},
		&models.AdminUser{},
		&models.ContactMessage{},
		&models.TestDrive{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Vehicle listing sorts
		"CREATE INDEX IF NOT EXISTS idx_vehicles_created_at ON vehicles(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_vehicles_mileage ON vehicles(mileage)",
		"CREATE INDEX IF NOT EXISTS idx_vehicles_range_epa ON vehicles(range_epa)",

		// Image ordering per vehicle
		"CREATE INDEX IF NOT EXISTS idx_vehicle_images_order ON vehicle_images(vehicle_id, is_primary DESC, display_order ASC)",

		// Banner lookup per page
		"CREATE INDEX IF NOT EXISTS idx_banner_images_route_order ON banner_images(route, display_order)",

		// Lead inbox ordering
		"CREATE INDEX IF NOT EXISTS idx_contact_messages_created ON contact_messages(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_test_drives_created ON test_drives(created_at DESC)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			logrus.WithError(err).Warnf("Failed to create index: %s", index)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// SeedInitialData creates the default admin account and the stock banner
// set when the tables are empty.
func SeedInitialData(db *gorm.DB, cfg *config.Config) error {
	logrus.Info("Seeding initial data...")

	var adminCount int64
	db.Model(&models.AdminUser{}).Count(&adminCount)

	if adminCount == 0 {
		admin := &models.AdminUser{
			Username: cfg.Admin.DefaultUsername,
			Email:    cfg.Admin.DefaultEmail,
		}

		if err := admin.SetPassword(cfg.Admin.DefaultPassword); err != nil {
			return fmt.Errorf("failed to set admin password: %w", err)
		}

		if err := db.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		logrus.Info("Default admin user created successfully")
	}

	var bannerCount int64
	db.Model(&models.BannerImage{}).Count(&bannerCount)

	if bannerCount == 0 {
		banners := []models.BannerImage{
			{Route: "home", ImageURL: "https://images.unsplash.com/photo-1619767886558-efdc259cde1a?w=1920&q=80", DisplayOrder: 1, IsActive: true},
			{Route: "home", ImageURL: "https://images.unsplash.com/photo-1492144534655-ae79c964c9d7?w=1920&q=80", DisplayOrder: 2, IsActive: true},
			{Route: "home", ImageURL: "https://images.unsplash.com/photo-1583121274602-3e2820c69888?w=1920&q=80", DisplayOrder: 3, IsActive: true},
			{Route: "about", ImageURL: "https://images.unsplash.com/photo-1492144534655-ae79c964c9d7?w=1600", DisplayOrder: 1, IsActive: true},
			{Route: "finance", ImageURL: "https://images.unsplash.com/photo-1583121274602-3e2820c69888?w=1600", DisplayOrder: 1, IsActive: true},
			{Route: "contact", ImageURL: "https://images.unsplash.com/photo-1617531653332-bd46c24f2068?w=1600", DisplayOrder: 1, IsActive: true},
		}

		if err := db.Create(&banners).Error; err != nil {
			return fmt.Errorf("failed to seed banner images: %w", err)
		}

		logrus.Info("Default banner images created successfully")
	}

	logrus.Info("Initial data seeding completed")
	return nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
