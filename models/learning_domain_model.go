package models

// LearningDomain is a catalog entity: the canonical Title is what admins
// seed, translations carry the per-language display names.
type LearningDomain struct {
	ID      uint    `gorm:"primary_key" json:"id"`
	Title   string  `gorm:"size:100;not null;unique" json:"title"`
	IconURL *string `gorm:"size:255" json:"icon"`

	Translations []LearningDomainTranslation `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

type LearningDomainTranslation struct {
	ID               uint   `gorm:"primary_key" json:"-"`
	LearningDomainID uint   `gorm:"not null;uniqueIndex:idx_domain_lang" json:"-"`
	Language         string `gorm:"size:5;not null;uniqueIndex:idx_domain_lang" json:"language"`
	Name             string `gorm:"size:100;not null" json:"name"`
}

// LocalizedName returns the translation for lang, falling back to English,
// then any translation, then the canonical title.
func (d *LearningDomain) LocalizedName(lang string) string {
	var english, any string
	for _, t := range d.Translations {
		if t.Name == "" {
			continue
		}
		if t.Language == lang {
			return t.Name
		}
		if t.Language == "en" {
			english = t.Name
		}
		if any == "" {
			any = t.Name
		}
	}
	if english != "" {
		return english
	}
	if any != "" {
		return any
	}
	return d.Title
}
