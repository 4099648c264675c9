package database

import (
	"fmt"
	"log"

	config "github.com/steamupuz/steamup_backend/configs"
	"github.com/steamupuz/steamup_backend/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.OTPCode{},
		&models.LearningDomain{},
		&models.LearningDomainTranslation{},
		&models.LearningMotivation{},
		&models.LearningMotivationTranslation{},
		&models.LearningPeriodTarget{},
		&models.LearningPeriodTargetTranslation{},
		&models.UserProfile{},
		&models.AppConfig{},
		&models.AppConfigTranslation{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}
