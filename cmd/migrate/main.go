package main

import (
	"log"
	"os"

	"roadmap-voting-be/internal/model"
	"roadmap-voting-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Running migrations...")

	if err := db.AutoMigrate(&model.Feature{}, &model.AdminLog{}); err != nil {
		log.Fatal("Error: Migration failed:", err)
	}

	log.Println("Migration completed!")
}
