package main

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"travelapp/internal/database"
	"travelapp/internal/domain"
)

func main() {
	_ = godotenv.Load()

	db, err := database.Connect("travel.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(&domain.Booking{}, &domain.Payment{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Clean in dependency order
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")

	now := time.Now()
	bookings := []domain.Booking{
		{
			UserEmail:        "alemu@example.com",
			PropertyName:     "Lakeside Villa, Bahir Dar",
			CheckInDate:      now.AddDate(0, 0, 7),
			CheckOutDate:     now.AddDate(0, 0, 10),
			TotalPrice:       450.00,
			BookingReference: ref(),
		},
		{
			UserEmail:        "sara@example.com",
			PropertyName:     "Entoto Hillside Lodge",
			CheckInDate:      now.AddDate(0, 0, 14),
			CheckOutDate:     now.AddDate(0, 0, 16),
			TotalPrice:       220.00,
			BookingReference: ref(),
		},
		{
			UserEmail:        "daniel@example.com",
			PropertyName:     "Awash Valley Guesthouse",
			CheckInDate:      now.AddDate(0, 1, 0),
			CheckOutDate:     now.AddDate(0, 1, 5),
			TotalPrice:       780.50,
			BookingReference: ref(),
		},
	}

	for i := range bookings {
		if err := db.Create(&bookings[i]).Error; err != nil {
			log.Fatal("seed booking failed:", err)
		}
		log.Printf("seeded booking %s (%s)", bookings[i].BookingReference, bookings[i].PropertyName)
	}

	log.Println("Done.")
}

func ref() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}
