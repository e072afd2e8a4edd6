package database

import (
	"academy/config"
	"academy/models"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		config.AppConfig.DBHost,
		config.AppConfig.DBUser,
		config.AppConfig.DBPassword,
		config.AppConfig.DBName,
		config.AppConfig.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		os.Exit(2)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	runMigrations(db)

	Database = DbInstance{Db: db}

	if err := SeedAppDefaults(db); err != nil {
		log.Printf("Error seeding app defaults: %v", err)
	}
}

// Close releases the underlying connection pool. Called from the shutdown hook.
func Close() {
	if Database.Db == nil {
		return
	}
	sqlDB, err := Database.Db.DB()
	if err != nil {
		return
	}
	sqlDB.Close()
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.AppDefault{},
		&models.User{},
		&models.Course{},
		&models.Payment{},
		&models.Enrollment{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// SeedAppDefaults inserts the default settings rows once, when the table is empty.
func SeedAppDefaults(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.AppDefault{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.AppDefault{
		{UniqueID: uuid.NewString(), Criteria: models.CriteriaMaintenance, DataType: "BOOLEAN", Value: datatypes.JSON([]byte("false"))},
		{UniqueID: uuid.NewString(), Criteria: models.CriteriaPaystackSecretKey, DataType: "STRING", Value: datatypes.JSON([]byte("null"))},
		{UniqueID: uuid.NewString(), Criteria: models.CriteriaPaystackPublicKey, DataType: "STRING", Value: datatypes.JSON([]byte("null"))},
		{UniqueID: uuid.NewString(), Criteria: models.CriteriaSquadSecretKey, DataType: "STRING", Value: datatypes.JSON([]byte("null"))},
		{UniqueID: uuid.NewString(), Criteria: models.CriteriaSquadPublicKey, DataType: "STRING", Value: datatypes.JSON([]byte("null"))},
		{UniqueID: uuid.NewString(), Criteria: models.CriteriaApiWhitelist, DataType: "ARRAY", Value: datatypes.JSON([]byte("null"))},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&defaults).Error
	})
	if err == nil {
		log.Println("Added app defaults")
	}
	return err
}
