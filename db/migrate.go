package db

import (
	"fmt"
	"log"

	"github.com/healeasy/healeasy-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Doctor{},
		&models.InvitationCode{},
		&models.Appointment{},
		&models.AvailableSlot{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
