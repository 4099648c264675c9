package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/steamupuz/steamup_backend/database"
	"github.com/steamupuz/steamup_backend/middleware"
	"github.com/steamupuz/steamup_backend/models"
	"github.com/steamupuz/steamup_backend/response"
	"gorm.io/gorm"
)

// Theme defaults used when the config rows were never seeded.
const (
	DefaultPrimaryColor = "#12D18E"
	DefaultPlatformName = "SteamUp"
)

type ConfigEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func ListConfig(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	var configs []models.AppConfig
	if err := database.DB.Preload("Translations").Order("key").Find(&configs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load app config")
	}

	entries := make([]ConfigEntry, 0, len(configs))
	for i := range configs {
		entries = append(entries, ConfigEntry{
			Key:   configs[i].Key,
			Value: configs[i].LocalizedValue(lang),
		})
	}
	return response.Success(c, fiber.StatusOK, entries)
}

func configValue(key, lang, fallback string) (string, error) {
	var cfg models.AppConfig
	err := database.DB.Preload("Translations").Where("key = ?", key).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fallback, nil
	}
	if err != nil {
		return "", err
	}
	if v := cfg.LocalizedValue(lang); v != "" {
		return v, nil
	}
	return fallback, nil
}

func Theme(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	primaryColor, err := configValue("primary_color", lang, DefaultPrimaryColor)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load theme")
	}
	platformName, err := configValue("platform_name", lang, DefaultPlatformName)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load theme")
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{
		"primary_color": primaryColor,
		"platform_name": platformName,
	})
}
