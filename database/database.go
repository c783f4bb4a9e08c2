package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"kesher-manager-backend/config"
	"kesher-manager-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func ConnectDatabase(cfg *config.Config) error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		cfg.DbHost,
		cfg.DbPort,
		cfg.DbUser,
		cfg.DbPass,
		cfg.DbName,
		cfg.DbSslMode,
		cfg.DbTz,
	)

	// Configure GORM logger based on environment
	gormLogger := logger.Default
	if cfg.Env == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	maxRetries := 5
	retryInterval := time.Second * 10

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Attempting to connect to database (attempt %d/%d)...", attempt, maxRetries)

		var err error
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormLogger,

			NowFunc: func() time.Time {
				return time.Now().UTC()
			},
		})

		if err == nil {
			sqlDB, err := DB.DB()

			if err == nil {
				err = sqlDB.Ping()
				if err == nil {
					// Set connection pool settings
					sqlDB.SetMaxIdleConns(10)
					sqlDB.SetMaxOpenConns(100)
					sqlDB.SetConnMaxLifetime(time.Hour)

					log.Println("Database connection established.")
					return nil
				}
				log.Printf("x Database ping failed: %v", err)
			} else {
				log.Printf("x Failed to get database instance: %v", err)
			}
		} else {
			log.Printf("x Failed to connect to database: %v", err)
		}

		if attempt < maxRetries {
			log.Printf("Retrying in %s...", retryInterval)
			time.Sleep(retryInterval)
		}

	}

	return fmt.Errorf("failed to connect to database after %d attempts", maxRetries)
}

// MigrateDatabase performs automatic migration of database schemas
func MigrateDatabase() error {
	log.Println("🔄 Starting database migration...")

	err := DB.AutoMigrate(
		&models.Box{},
		&models.Transport{},
		&models.Task{},
	)

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("✅ Database migrations completed successfully")
	return nil
}

// SeedInitialBoxes seeds a starter set of distribution boxes so a fresh
// install has something to look at.
func SeedInitialBoxes() error {
	log.Println("🌱 Seeding initial box data into the database...")

	boxes := []models.Box{
		{LocationName: "Cohen Family", Address: "Herzl 12", City: "Jerusalem", DonationGroup: "North", Status: models.BoxStatusActive},
		{LocationName: "Levi Family", Address: "Jaffa 45", City: "Jerusalem", DonationGroup: "Center", Status: models.BoxStatusActive},
		{LocationName: "Community Center Gilo", Address: "HaGai 3", City: "Jerusalem", DonationGroup: "South", Status: models.BoxStatusActive},
	}

	for _, boxData := range boxes {
		var existingBox models.Box
		result := DB.Where("location_name = ?", boxData.LocationName).First(&existingBox)

		if result.Error != nil {
			if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to look up box %s: %w", boxData.LocationName, result.Error)
			}

			box := boxData
			box.CreatedAt = time.Now().UTC()
			box.UpdatedAt = box.CreatedAt

			if err := DB.Create(&box).Error; err != nil {
				return fmt.Errorf("failed to create box %s: %w", boxData.LocationName, err)
			}
		}
	}

	log.Println("✅ Boxes seeding completed successfully")
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
