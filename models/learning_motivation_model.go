package models

type LearningMotivation struct {
	ID      uint    `gorm:"primary_key" json:"id"`
	Title   string  `gorm:"size:100;not null;unique" json:"title"`
	IconURL *string `gorm:"size:255" json:"icon"`

	Translations []LearningMotivationTranslation `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

type LearningMotivationTranslation struct {
	ID                   uint   `gorm:"primary_key" json:"-"`
	LearningMotivationID uint   `gorm:"not null;uniqueIndex:idx_motivation_lang" json:"-"`
	Language             string `gorm:"size:5;not null;uniqueIndex:idx_motivation_lang" json:"language"`
	Title                string `gorm:"size:100;not null" json:"title"`
}

func (m *LearningMotivation) LocalizedTitle(lang string) string {
	var english, any string
	for _, t := range m.Translations {
		if t.Title == "" {
			continue
		}
		if t.Language == lang {
			return t.Title
		}
		if t.Language == "en" {
			english = t.Title
		}
		if any == "" {
			any = t.Title
		}
	}
	if english != "" {
		return english
	}
	if any != "" {
		return any
	}
	return m.Title
}
