package main

import (
	"log"
	"os"
	"time"

	"roadmap-voting-be/internal/model"
	"roadmap-voting-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

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

	log.Println("Seeding roadmap features...")

	// The launch roadmap, ids 1-23. These ids are part of the public
	// contract and must stay stable across reseeds.
	features := []model.Feature{
		{Id: 1, Title: "Dark Mode", Description: "Add a dark theme option for better viewing at night and reduced eye strain", Votes: 42, Status: "Under Review", SubmittedAt: day(2025, 1, 15)},
		{Id: 2, Title: "Custom Tags", Description: "Let users add custom tags to locations like business trip or vacation", Votes: 38, Status: "Under Review", SubmittedAt: day(2025, 1, 14)},
		{Id: 3, Title: "Export to CSV", Description: "Export all location data as CSV file for analysis in Excel or Numbers", Votes: 29, Status: "Under Review", SubmittedAt: day(2025, 1, 13)},
		{Id: 4, Title: "Smart Notifications", Description: "Get notified when you visit a new country or city for the first time", Votes: 15, Status: "Under Review", SubmittedAt: day(2025, 1, 12)},
		{Id: 5, Title: "Custom Map Styles", Description: "Choose different map visual styles like satellite terrain or vintage", Votes: 12, Status: "Under Review", SubmittedAt: day(2025, 1, 11)},
		{Id: 6, Title: "Year in Review", Description: "Beautiful annual summary of your travels with stats and highlights", Votes: 156, Status: "Prioritising", SubmittedAt: day(2025, 1, 10)},
		{Id: 7, Title: "Travel Goals", Description: "Set goals like visit 50 countries and track progress", Votes: 89, Status: "Prioritising", SubmittedAt: day(2025, 1, 9)},
		{Id: 8, Title: "Timeline View", Description: "View your travel history as an interactive timeline", Votes: 67, Status: "Prioritising", SubmittedAt: day(2025, 1, 8)},
		{Id: 9, Title: "Smart Predictions", Description: "AI-powered predictions of your next destination based on travel patterns", Votes: 234, Status: "Planned", SubmittedAt: day(2025, 1, 7)},
		{Id: 10, Title: "Visa Tracking", Description: "Never overstay! Get warnings before reaching visa time limits", Votes: 189, Status: "Planned", SubmittedAt: day(2025, 1, 6)},
		{Id: 11, Title: "Premium Features", Description: "Early access to new features before general release", Votes: 145, Status: "Planned", SubmittedAt: day(2025, 1, 5)},
		{Id: 12, Title: "Advanced Notes", Description: "Rich notes with timestamps for each location and journey", Votes: 98, Status: "Planned", SubmittedAt: day(2025, 1, 4)},
		{Id: 13, Title: "Photo Integration", Description: "Import your travel history from photo metadata in your camera roll", Votes: 312, Status: "In Progress", SubmittedAt: day(2024, 12, 20)},
		{Id: 14, Title: "Performance Boost", Description: "Faster app launch and smoother scrolling even with years of data", Votes: 267, Status: "In Progress", SubmittedAt: day(2024, 12, 19)},
		{Id: 15, Title: "Enhanced Stats", Description: "More detailed insights into your travel patterns and history", Votes: 201, Status: "In Progress", SubmittedAt: day(2024, 12, 18)},
		{Id: 16, Title: "Mac App", Description: "Full-featured desktop companion for macOS", Votes: 567, Status: "Exploring", SubmittedAt: day(2024, 12, 15)},
		{Id: 17, Title: "Family Sharing", Description: "Share and coordinate travels with family members", Votes: 234, Status: "Exploring", SubmittedAt: day(2024, 12, 14)},
		{Id: 18, Title: "Third-Party Integrations", Description: "Connect with calendar expense and health apps", Votes: 178, Status: "Exploring", SubmittedAt: day(2024, 12, 13)},
		{Id: 19, Title: "Web Dashboard", Description: "View your travel history from any browser", Votes: 445, Status: "Exploring", SubmittedAt: day(2024, 12, 12)},
		{Id: 20, Title: "Travel Planner", Description: "Plan your future travels and visualize upcoming journeys", Votes: 445, Status: "Completed", SubmittedAt: day(2024, 11, 15)},
		{Id: 21, Title: "iCloud Sync", Description: "Free file-based sync and premium automatic CloudKit sync", Votes: 389, Status: "Completed", SubmittedAt: day(2024, 11, 14)},
		{Id: 22, Title: "Arabic Support", Description: "Complete right-to-left interface for Arabic speakers", Votes: 156, Status: "Completed", SubmittedAt: day(2024, 10, 20)},
		{Id: 23, Title: "Map View", Description: "Visualize your travels on an interactive map", Votes: 523, Status: "Completed", SubmittedAt: day(2024, 9, 15)},
	}

	created := 0
	for _, f := range features {
		f.Email = "Anonymous"

		var existing model.Feature
		if err := db.First(&existing, f.Id).Error; err == nil {
			color.Yellow("Feature #%d '%s' already exists, skipping...", f.Id, f.Title)
			continue
		}

		if err := db.Create(&f).Error; err != nil {
			color.Red("Error creating feature '%s': %v", f.Title, err)
		} else {
			color.Green("Created feature #%d: %s", f.Id, f.Title)
			created++
		}
	}

	color.Cyan("Seeding completed, %d features created.", created)
}
