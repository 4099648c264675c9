package i18n

import "strings"

const DefaultLanguage = "en"

var supported = []string{"en", "uz", "ru"}

func SupportedLanguages() []string {
	return supported
}

func IsSupported(lang string) bool {
	for _, l := range supported {
		if l == lang {
			return true
		}
	}
	return false
}

// Resolve picks the request language: an explicit ?lang= query parameter
// wins, then the first supported primary subtag of the Accept-Language
// header, then the default.
func Resolve(queryLang, acceptLanguage string) string {
	if IsSupported(queryLang) {
		return queryLang
	}

	for _, part := range strings.Split(acceptLanguage, ",") {
		lang := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		// en-US -> en
		lang = strings.SplitN(lang, "-", 2)[0]
		if IsSupported(lang) {
			return lang
		}
	}

	return DefaultLanguage
}

// labels is the static catalog for enum option labels and period units.
// Missing entries fall back to English.
var labels = map[string]map[string]string{
	"en": {
		"discovery_source.google":    "Google",
		"discovery_source.facebook":  "Facebook",
		"discovery_source.tiktok":    "TikTok",
		"discovery_source.playstore": "Play Store",
		"discovery_source.tv":        "TV",
		"stem_level.beginner":        "Beginner",
		"stem_level.intermediate":    "Intermediate",
		"stem_level.advanced":        "Advanced",
		"period_unit.daily":          "day",
		"period_unit.weekly":         "week",
		"period_unit.monthly":        "month",
		"period_unit.yearly":         "year",
	},
	"uz": {
		"stem_level.beginner":     "Boshlang'ich",
		"stem_level.intermediate": "O'rta",
		"stem_level.advanced":     "Yuqori",
		"period_unit.daily":       "kun",
		"period_unit.weekly":      "hafta",
		"period_unit.monthly":     "oy",
		"period_unit.yearly":      "yil",
	},
	"ru": {
		"stem_level.beginner":     "Начинающий",
		"stem_level.intermediate": "Средний",
		"stem_level.advanced":     "Продвинутый",
		"period_unit.daily":       "день",
		"period_unit.weekly":      "неделя",
		"period_unit.monthly":     "месяц",
		"period_unit.yearly":      "год",
	},
}

// Label returns the catalog entry for key in lang, falling back to English,
// then to the key itself.
func Label(lang, key string) string {
	if m, ok := labels[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := labels[DefaultLanguage][key]; ok {
		return v
	}
	return key
}
