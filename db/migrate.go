package db

import (
	"fmt"
	"log"

	"github.com/crewplan/crewplan-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.Organization{},
		&models.Employee{},
		&models.WorkSite{},
		&models.Shift{},
		&models.ShiftPresetGroup{},
		&models.ShiftPreset{},
		&models.EmployeePunch{},
		&models.Payslip{},
		&models.Availability{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
