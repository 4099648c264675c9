package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/steamupuz/steamup_backend/database"
	"github.com/steamupuz/steamup_backend/i18n"
	"github.com/steamupuz/steamup_backend/middleware"
	"github.com/steamupuz/steamup_backend/models"
	"github.com/steamupuz/steamup_backend/response"
)

type ChoiceOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type CatalogOption struct {
	ID    uint    `json:"id"`
	Title string  `json:"title"`
	Icon  *string `json:"icon"`
}

type DailyGoalOption struct {
	ID      uint    `json:"id"`
	Title   string  `json:"title"`
	Comment string  `json:"comment"`
	Icon    *string `json:"icon"`
}

type OnboardingOptionsResponse struct {
	DiscoverySources []ChoiceOption    `json:"discovery_sources"`
	StemLevels       []ChoiceOption    `json:"stem_levels"`
	Motivations      []CatalogOption   `json:"motivations"`
	DailyGoals       []DailyGoalOption `json:"daily_goals"`
	LearningDomains  []CatalogOption   `json:"learning_domains"`
}

// OnboardingOptions aggregates everything the onboarding wizard needs:
// static enum choices plus the translated catalogs.
func OnboardingOptions(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	discoverySources := make([]ChoiceOption, 0)
	for _, v := range models.DiscoverySources() {
		discoverySources = append(discoverySources, ChoiceOption{
			Value: v,
			Label: i18n.Label(lang, "discovery_source."+v),
		})
	}

	stemLevels := make([]ChoiceOption, 0)
	for _, v := range models.StemLevels() {
		stemLevels = append(stemLevels, ChoiceOption{
			Value: v,
			Label: i18n.Label(lang, "stem_level."+v),
		})
	}

	var domains []models.LearningDomain
	if err := database.DB.Preload("Translations").Order("id").Find(&domains).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load learning domains")
	}
	domainOptions := make([]CatalogOption, 0, len(domains))
	for i := range domains {
		domainOptions = append(domainOptions, CatalogOption{
			ID:    domains[i].ID,
			Title: domains[i].LocalizedName(lang),
			Icon:  domains[i].IconURL,
		})
	}

	var motivations []models.LearningMotivation
	if err := database.DB.Preload("Translations").Order("id").Find(&motivations).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load learning motivations")
	}
	motivationOptions := make([]CatalogOption, 0, len(motivations))
	for i := range motivations {
		motivationOptions = append(motivationOptions, CatalogOption{
			ID:    motivations[i].ID,
			Title: motivations[i].LocalizedTitle(lang),
			Icon:  motivations[i].IconURL,
		})
	}

	var targets []models.LearningPeriodTarget
	if err := database.DB.Preload("Translations").Order("id").Find(&targets).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load period targets")
	}
	dailyGoals := make([]DailyGoalOption, 0, len(targets))
	for i := range targets {
		unitLabel := i18n.Label(lang, "period_unit."+targets[i].PeriodUnit)
		dailyGoals = append(dailyGoals, DailyGoalOption{
			ID:      targets[i].ID,
			Title:   targets[i].DisplayTitle(unitLabel),
			Comment: targets[i].LocalizedComplement(lang),
			Icon:    targets[i].IconURL,
		})
	}

	return response.Success(c, fiber.StatusOK, OnboardingOptionsResponse{
		DiscoverySources: discoverySources,
		StemLevels:       stemLevels,
		Motivations:      motivationOptions,
		DailyGoals:       dailyGoals,
		LearningDomains:  domainOptions,
	})
}
