package db

import (
	"os"

	"gameblob/models"
	"gameblob/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=postgres dbname=gameblob sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		utils.Log.Fatal("failed to connect to the database: ", err)
	}

	if err := Migrate(DB); err != nil {
		utils.Log.Fatal("failed to migrate: ", err)
	}

	utils.Log.Info("Database connected and migrated")
}

// Migrate applies the schema. Split out so tests can run it against their own
// connection.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.Comment{},
		&models.Feedback{},
		&models.Purchase{},
	)
}
