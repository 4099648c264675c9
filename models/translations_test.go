package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLearningDomainLocalizedName(t *testing.T) {
	domain := LearningDomain{
		Title: "Math",
		Translations: []LearningDomainTranslation{
			{Language: "en", Name: "Mathematics"},
			{Language: "uz", Name: "Matematika"},
			{Language: "ru", Name: "Математика"},
		},
	}

	assert.Equal(t, "Matematika", domain.LocalizedName("uz"))
	assert.Equal(t, "Математика", domain.LocalizedName("ru"))
	// Unsupported language falls back to English.
	assert.Equal(t, "Mathematics", domain.LocalizedName("de"))
}

func TestLearningDomainLocalizedName_AnyTranslationFallback(t *testing.T) {
	domain := LearningDomain{
		Title: "Science",
		Translations: []LearningDomainTranslation{
			{Language: "ru", Name: "Наука"},
		},
	}
	assert.Equal(t, "Наука", domain.LocalizedName("uz"))
}

func TestLearningDomainLocalizedName_CanonicalFallback(t *testing.T) {
	domain := LearningDomain{Title: "Robotics"}
	assert.Equal(t, "Robotics", domain.LocalizedName("en"))
}

func TestLearningMotivationLocalizedTitle(t *testing.T) {
	m := LearningMotivation{
		Title: "Just for fun",
		Translations: []LearningMotivationTranslation{
			{Language: "en", Title: "Just for fun"},
			{Language: "ru", Title: "Просто для удовольствия"},
		},
	}
	assert.Equal(t, "Просто для удовольствия", m.LocalizedTitle("ru"))
	assert.Equal(t, "Just for fun", m.LocalizedTitle("uz"))
}

func TestAppConfigLocalizedValue(t *testing.T) {
	value := "#12D18E"
	cfg := AppConfig{
		Key:   "primary_color",
		Value: &value,
		Translations: []AppConfigTranslation{
			{Language: "en", Value: "#12D18E"},
			{Language: "ru", Value: "#FF0000"},
		},
	}
	assert.Equal(t, "#FF0000", cfg.LocalizedValue("ru"))
	assert.Equal(t, "#12D18E", cfg.LocalizedValue("uz"))
}

func TestAppConfigLocalizedValue_CanonicalFallback(t *testing.T) {
	value := "SteamUp"
	cfg := AppConfig{Key: "platform_name", Value: &value}
	assert.Equal(t, "SteamUp", cfg.LocalizedValue("en"))

	empty := AppConfig{Key: "platform_name"}
	assert.Equal(t, "", empty.LocalizedValue("en"))
}

func TestPeriodTargetDisplayTitle(t *testing.T) {
	target := LearningPeriodTarget{RepeatCount: 5, PeriodUnit: "daily"}
	assert.Equal(t, "5 / day", target.DisplayTitle("day"))
	assert.Equal(t, "5 / день", target.DisplayTitle("день"))
}

func TestPeriodTargetLocalizedComplement(t *testing.T) {
	target := LearningPeriodTarget{
		Complement: "Consistent learner",
		Translations: []LearningPeriodTargetTranslation{
			{Language: "en", Complement: "Consistent learner"},
			{Language: "uz", Complement: "Doimiy o'rganuvchi"},
		},
	}
	assert.Equal(t, "Doimiy o'rganuvchi", target.LocalizedComplement("uz"))
	assert.Equal(t, "Consistent learner", target.LocalizedComplement("ru"))
}

func TestOTPCodeRedeemable(t *testing.T) {
	fresh := OTPCode{CreatedAt: time.Now().Add(-time.Minute)}
	assert.True(t, fresh.Redeemable())

	used := OTPCode{CreatedAt: time.Now().Add(-time.Minute), IsUsed: true}
	assert.False(t, used.Redeemable())

	expired := OTPCode{CreatedAt: time.Now().Add(-6 * time.Minute)}
	assert.True(t, expired.Expired())
	assert.False(t, expired.Redeemable())

	boundary := OTPCode{CreatedAt: time.Now().Add(-OTPLifetime)}
	assert.False(t, boundary.Redeemable())
}
