package main

import (
	"log"
	"os"

	"roadmap-voting-be/internal/model"
	"roadmap-voting-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Out-of-band maintenance: removes features created by the end-to-end test
// suite. Deletion is never exposed through the service itself.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	marker := os.Getenv("TEST_FEATURE_MARKER")
	if marker == "" {
		marker = "E2E Test Feature"
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	var doomed []model.Feature
	if err := db.Where("title LIKE ?", "%"+marker+"%").Find(&doomed).Error; err != nil {
		log.Fatal("Error: Failed to list test features:", err)
	}

	if len(doomed) == 0 {
		color.Cyan("No test features found.")
		return
	}

	for _, f := range doomed {
		color.Yellow("Deleting: %s (ID: %d)", f.Title, f.Id)
	}

	res := db.Where("title LIKE ?", "%"+marker+"%").Delete(&model.Feature{})
	if res.Error != nil {
		log.Fatal("Error: Cleanup failed:", res.Error)
	}

	color.Green("Deleted %d test features.", res.RowsAffected)
}
