package db

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vuanhp265/Aquashop/internal/models"
)

var DB *gorm.DB

// Init opens the store file and ensures the schema exists. AutoMigrate is
// idempotent, so repeated startups against the same file are safe.
func Init(dsn string) {

	var err error

	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})

	if err != nil {

		log.Fatalf("Failed to connect to DB: %v", err)
	}

	err = DB.AutoMigrate(
		&models.Fish{},
		&models.Accessory{},
		&models.Order{},
	)

	if err != nil {

		log.Fatalf("Failed to migrate DB: %v", err)
	}

	log.Println("Database connected and migrated successfully")
}

func SetTestDB(testDB *gorm.DB) {
	DB = testDB
}
