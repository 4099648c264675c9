package models

// AppConfig holds small key/value settings (theme color, platform name)
// whose values can differ per language.
type AppConfig struct {
	ID    uint    `gorm:"primary_key" json:"id"`
	Key   string  `gorm:"size:50;not null;unique" json:"key"`
	Value *string `gorm:"size:255" json:"value"`

	Translations []AppConfigTranslation `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

type AppConfigTranslation struct {
	ID          uint   `gorm:"primary_key" json:"-"`
	AppConfigID uint   `gorm:"not null;uniqueIndex:idx_config_lang" json:"-"`
	Language    string `gorm:"size:5;not null;uniqueIndex:idx_config_lang" json:"language"`
	Value       string `gorm:"size:255;not null" json:"value"`
}

func (a *AppConfig) LocalizedValue(lang string) string {
	var english, any string
	for _, t := range a.Translations {
		if t.Value == "" {
			continue
		}
		if t.Language == lang {
			return t.Value
		}
		if t.Language == "en" {
			english = t.Value
		}
		if any == "" {
			any = t.Value
		}
	}
	if english != "" {
		return english
	}
	if any != "" {
		return any
	}
	if a.Value != nil {
		return *a.Value
	}
	return ""
}
