package database

import (
	"log"

	"academy-app/config"
	"academy-app/internal/domain/billing"
	"academy-app/internal/domain/plans"
	"academy-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := config.DB_URL
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		&users.User{},
		&users.OtpCode{},
		&plans.Plan{},
		&billing.Payment{},
		&billing.WebhookEvent{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	seedPlans()

	log.Println("Connected and migrated successfully")
}

// seedPlans mirrors the static catalog into Postgres so plan rows can be
// referenced by user records. Prices and features always follow the source
// catalog, never the other way around.
func seedPlans() {
	for _, p := range plans.Catalog() {
		var existing plans.Plan
		err := DB.Where("code = ?", p.Code).First(&existing).Error
		if err != nil {
			if err := DB.Create(&p).Error; err != nil {
				log.Fatal("Failed to seed plan:", err)
			}
			continue
		}

		existing.Name = p.Name
		existing.PriceINR = p.PriceINR
		existing.Interval = p.Interval
		existing.Features = p.Features
		if err := DB.Save(&existing).Error; err != nil {
			log.Fatal("Failed to refresh plan:", err)
		}
	}
}
