package database

import (
	"os"

	"prompt-vault/internal/domain/catalog"
	"prompt-vault/internal/domain/users"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		logrus.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		&users.User{},
		&users.VerificationToken{},
		&catalog.Category{},
		&catalog.Prompt{},
	); err != nil {
		logrus.Fatal("AutoMigrate error: ", err)
	}

	logrus.Info("Connected and migrated successfully")
}
