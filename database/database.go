package database

import (
	"fmt"
	"log"

	"lms/config"
	"lms/models"
	courseModels "lms/models/course"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to the configured database driver
func ConnectDb() {
	cfg := config.AppConfig

	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
		)
		dial = mysql.Open(dsn)
	case "sqlite":
		dial = sqlite.Open(cfg.DBName)
	default:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
		dial = postgres.Open(dsn)
	}

	// TranslateError maps driver duplicate-key failures to gorm.ErrDuplicatedKey,
	// which is what every insert-or-reject path in the services relies on.
	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database (%s): %v", cfg.DBDriver, err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	// Run database migrations
	runMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	if err := Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// Migrate creates or updates the schema for every model the engine touches.
// Shared with the test suite, which runs it against in-memory sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Lesson{},
		&courseModels.Quiz{},
		&courseModels.Question{},
		&courseModels.Answer{},
		&courseModels.QuizAttempt{},
		&courseModels.Enrollment{},
		&courseModels.LessonCompletion{},
		&courseModels.Certificate{},
	)
}
