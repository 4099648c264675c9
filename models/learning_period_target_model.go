package models

import "fmt"

// LearningPeriodTarget represents a daily-goal option, e.g. "5 lessons a
// day". The Complement is a short encouragement ("Consistent learner").
type LearningPeriodTarget struct {
	ID          uint    `gorm:"primary_key" json:"id"`
	RepeatCount int     `gorm:"not null;default:1" json:"repeat_count"`
	PeriodUnit  string  `gorm:"size:10;not null;default:'daily'" json:"period_unit"`
	Complement  string  `gorm:"size:100" json:"complement"`
	IconURL     *string `gorm:"size:255" json:"icon"`

	Translations []LearningPeriodTargetTranslation `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

type LearningPeriodTargetTranslation struct {
	ID                     uint   `gorm:"primary_key" json:"-"`
	LearningPeriodTargetID uint   `gorm:"not null;uniqueIndex:idx_target_lang" json:"-"`
	Language               string `gorm:"size:5;not null;uniqueIndex:idx_target_lang" json:"language"`
	Complement             string `gorm:"size:100;not null" json:"complement"`
}

func PeriodUnits() []string {
	return []string{"daily", "weekly", "monthly", "yearly"}
}

// DisplayTitle renders the target as "N / day" with the unit translated by
// the caller-provided unit label.
func (t *LearningPeriodTarget) DisplayTitle(unitLabel string) string {
	return fmt.Sprintf("%d / %s", t.RepeatCount, unitLabel)
}

func (t *LearningPeriodTarget) LocalizedComplement(lang string) string {
	var english, any string
	for _, tr := range t.Translations {
		if tr.Complement == "" {
			continue
		}
		if tr.Language == lang {
			return tr.Complement
		}
		if tr.Language == "en" {
			english = tr.Complement
		}
		if any == "" {
			any = tr.Complement
		}
	}
	if english != "" {
		return english
	}
	if any != "" {
		return any
	}
	return t.Complement
}
