package database

import (
	"errors"
	"log"

	"github.com/steamupuz/steamup_backend/models"
	"gorm.io/gorm"
)

type translatedSeed struct {
	Title        string
	Translations map[string]string
}

var learningDomainSeeds = []translatedSeed{
	{"Science", map[string]string{"en": "Science", "uz": "Ilm-fan", "ru": "Наука"}},
	{"Technology", map[string]string{"en": "Technology", "uz": "Texnologiya", "ru": "Технология"}},
	{"Engineering", map[string]string{"en": "Engineering", "uz": "Muhandislik", "ru": "Инженерия"}},
	{"Math", map[string]string{"en": "Mathematics", "uz": "Matematika", "ru": "Математика"}},
	{"Computer Science", map[string]string{"en": "Computer Science", "uz": "Kompyuter fanlari", "ru": "Информатика"}},
	{"Robotics", map[string]string{"en": "Robotics", "uz": "Robototexnika", "ru": "Робототехника"}},
	{"Astronomy", map[string]string{"en": "Astronomy", "uz": "Astronomiya", "ru": "Астрономия"}},
	{"Environmental Science", map[string]string{"en": "Environmental Science", "uz": "Ekologiya", "ru": "Экология"}},
	{"Physics", map[string]string{"en": "Physics", "uz": "Fizika", "ru": "Физика"}},
	{"Chemistry", map[string]string{"en": "Chemistry", "uz": "Kimyo", "ru": "Химия"}},
	{"Biology", map[string]string{"en": "Biology", "uz": "Biologiya", "ru": "Биология"}},
}

var learningMotivationSeeds = []translatedSeed{
	{"Just for fun", map[string]string{"en": "Just for fun", "uz": "Shunchaki qiziq", "ru": "Просто для удовольствия"}},
	{"Improve my career", map[string]string{"en": "Improve my career", "uz": "Karyeramni rivojlantirish", "ru": "Улучшить карьеру"}},
	{"Support my education", map[string]string{"en": "Support my education", "uz": "Ta'limni qo'llab-quvvatlash", "ru": "Поддержать образование"}},
	{"Personal growth", map[string]string{"en": "Personal growth", "uz": "Shaxsiy rivojlanish", "ru": "Личностный рост"}},
	{"Contribution to society", map[string]string{"en": "Contribution to society", "uz": "Jamiyatga hissa qo'shish", "ru": "Вклад в общество"}},
}

type periodTargetSeed struct {
	PeriodUnit   string
	RepeatCount  int
	Complement   string
	Translations map[string]string
}

var learningPeriodTargetSeeds = []periodTargetSeed{
	{"daily", 1, "Just getting started", map[string]string{"en": "Take it easy", "uz": "Bosqichma-bosqich", "ru": "Не торопясь"}},
	{"daily", 2, "Building a habit", map[string]string{"en": "Building a habit", "uz": "Odatni shakllantirish", "ru": "Формирование привычки"}},
	{"daily", 5, "Consistent learner", map[string]string{"en": "Consistent learner", "uz": "Doimiy o'rganuvchi", "ru": "Постоянный ученик"}},
	{"daily", 10, "Ambitious achiever", map[string]string{"en": "Ambitious achiever", "uz": "Shuhratparast yutuqqa erishuvchi", "ru": "Амбициозный ученик"}},
	{"weekly", 3, "Weekend warrior", map[string]string{"en": "Weekend warrior", "uz": "Dam olish kunlari o'rganuvchi", "ru": "Выходной воин"}},
	{"weekly", 5, "Steady progress", map[string]string{"en": "Steady progress", "uz": "Barqaror progress", "ru": "Стабильный прогресс"}},
	{"monthly", 15, "Monthly milestone", map[string]string{"en": "Monthly milestone", "uz": "Oylik maqsad", "ru": "Ежемесячная цель"}},
}

var appConfigSeeds = []struct {
	Key          string
	Value        string
	Translations map[string]string
}{
	{"primary_color", "#12D18E", map[string]string{"en": "#12D18E", "uz": "#12D18E", "ru": "#12D18E"}},
	{"platform_name", "SteamUp", map[string]string{"en": "SteamUp", "uz": "SteamUp", "ru": "SteamUp"}},
}

// Seed fills the catalog and config tables. Every seeder is idempotent, so
// it is safe to run on each startup.
func Seed() {
	seedLearningDomains()
	seedLearningMotivations()
	seedLearningPeriodTargets()
	seedAppConfig()
	log.Println("✅ Catalog and config seed complete")
}

func seedLearningDomains() {
	for _, seed := range learningDomainSeeds {
		var existing models.LearningDomain
		err := DB.Where("title = ?", seed.Title).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("🔥 Failed to check learning domain %q: %v", seed.Title, err)
		}

		domain := models.LearningDomain{Title: seed.Title}
		for lang, name := range seed.Translations {
			domain.Translations = append(domain.Translations, models.LearningDomainTranslation{
				Language: lang,
				Name:     name,
			})
		}
		if err := DB.Create(&domain).Error; err != nil {
			log.Fatalf("🔥 Failed to seed learning domain %q: %v", seed.Title, err)
		}
	}
}

func seedLearningMotivations() {
	for _, seed := range learningMotivationSeeds {
		var existing models.LearningMotivation
		err := DB.Where("title = ?", seed.Title).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("🔥 Failed to check learning motivation %q: %v", seed.Title, err)
		}

		motivation := models.LearningMotivation{Title: seed.Title}
		for lang, title := range seed.Translations {
			motivation.Translations = append(motivation.Translations, models.LearningMotivationTranslation{
				Language: lang,
				Title:    title,
			})
		}
		if err := DB.Create(&motivation).Error; err != nil {
			log.Fatalf("🔥 Failed to seed learning motivation %q: %v", seed.Title, err)
		}
	}
}

func seedLearningPeriodTargets() {
	for _, seed := range learningPeriodTargetSeeds {
		var existing models.LearningPeriodTarget
		err := DB.Where("period_unit = ? AND repeat_count = ?", seed.PeriodUnit, seed.RepeatCount).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("🔥 Failed to check period target %s x%d: %v", seed.PeriodUnit, seed.RepeatCount, err)
		}

		target := models.LearningPeriodTarget{
			PeriodUnit:  seed.PeriodUnit,
			RepeatCount: seed.RepeatCount,
			Complement:  seed.Complement,
		}
		for lang, complement := range seed.Translations {
			target.Translations = append(target.Translations, models.LearningPeriodTargetTranslation{
				Language:   lang,
				Complement: complement,
			})
		}
		if err := DB.Create(&target).Error; err != nil {
			log.Fatalf("🔥 Failed to seed period target %s x%d: %v", seed.PeriodUnit, seed.RepeatCount, err)
		}
	}
}

func seedAppConfig() {
	for _, seed := range appConfigSeeds {
		var existing models.AppConfig
		err := DB.Where("key = ?", seed.Key).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("🔥 Failed to check app config %q: %v", seed.Key, err)
		}

		value := seed.Value
		cfg := models.AppConfig{Key: seed.Key, Value: &value}
		for lang, v := range seed.Translations {
			cfg.Translations = append(cfg.Translations, models.AppConfigTranslation{
				Language: lang,
				Value:    v,
			})
		}
		if err := DB.Create(&cfg).Error; err != nil {
			log.Fatalf("🔥 Failed to seed app config %q: %v", seed.Key, err)
		}
	}
}
