package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/steamupuz/steamup_backend/database"
	"github.com/steamupuz/steamup_backend/middleware"
	"github.com/steamupuz/steamup_backend/models"
	"github.com/steamupuz/steamup_backend/response"
	"gorm.io/gorm"
)

type ProfileRequest struct {
	FullName        *string `json:"full_name" validate:"omitempty,max=100"`
	Age             *int    `json:"age" validate:"omitempty,gte=0"`
	Interests       *[]uint `json:"interests"`
	Motivation      *uint   `json:"motivation"`
	DailyGoal       *uint   `json:"daily_goal"`
	DiscoverySource *string `json:"discovery_source" validate:"omitempty,oneof=google facebook tiktok playstore tv"`
	StemLevel       *string `json:"stem_level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

type ProfileResponse struct {
	FullName        string `json:"full_name"`
	Age             int    `json:"age"`
	Interests       []uint `json:"interests"`
	DiscoverySource string `json:"discovery_source"`
	StemLevel       string `json:"stem_level"`
	Motivation      *uint  `json:"motivation"`
	DailyGoal       *uint  `json:"daily_goal"`
}

func newProfileResponse(profile *models.UserProfile) ProfileResponse {
	interests := make([]uint, 0, len(profile.Interests))
	for _, d := range profile.Interests {
		interests = append(interests, d.ID)
	}
	return ProfileResponse{
		FullName:        profile.FullName,
		Age:             profile.Age,
		Interests:       interests,
		DiscoverySource: profile.DiscoverySource,
		StemLevel:       profile.StemLevel,
		Motivation:      profile.MotivationID,
		DailyGoal:       profile.DailyGoalID,
	}
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims := middleware.UserClaims(c)
	raw, _ := claims["user_id"].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired JWT")
	}
	return id, nil
}

// GetProfile returns the caller's profile, creating one with placeholder
// defaults on first access. A read that 404s would force every client to
// special-case onboarding, so the implicit create is intentional.
func GetProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var profile models.UserProfile
	err = database.DB.Preload("Interests").Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.UserProfile{
			UserID:          userID,
			FullName:        "",
			Age:             0,
			DiscoverySource: models.DefaultDiscoverySource,
			StemLevel:       models.DefaultStemLevel,
		}
		if err := database.DB.Create(&profile).Error; err != nil {
			// Two concurrent first reads can both miss and race on the
			// user_id unique index; the loser adopts the winner's row.
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to create profile")
			}
			if err := database.DB.Preload("Interests").Where("user_id = ?", userID).First(&profile).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to load profile")
			}
		}
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load profile")
	}

	return response.Success(c, fiber.StatusOK, newProfileResponse(&profile))
}

// UpsertProfile handles POST, PUT and PATCH. Fields absent from the payload
// keep their value; submitted interests fully replace the stored set.
func UpsertProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	var profile models.UserProfile
	created := false
	err = database.DB.Preload("Interests").Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		created = true
		profile = models.UserProfile{
			UserID:          userID,
			DiscoverySource: models.DefaultDiscoverySource,
			StemLevel:       models.DefaultStemLevel,
		}
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load profile")
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.DiscoverySource != nil {
		profile.DiscoverySource = *req.DiscoverySource
	}
	if req.StemLevel != nil {
		profile.StemLevel = *req.StemLevel
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if req.Motivation != nil {
			if err := checkMotivationExists(tx, *req.Motivation); err != nil {
				return err
			}
			profile.MotivationID = req.Motivation
		}
		if req.DailyGoal != nil {
			if err := checkDailyGoalExists(tx, *req.DailyGoal); err != nil {
				return err
			}
			profile.DailyGoalID = req.DailyGoal
		}

		var domains []*models.LearningDomain
		if req.Interests != nil {
			var err error
			domains, err = loadLearningDomains(tx, *req.Interests)
			if err != nil {
				return err
			}
		}

		if created {
			if req.Interests != nil {
				profile.Interests = domains
			}
			return tx.Create(&profile).Error
		}

		if err := tx.Omit("Interests").Save(&profile).Error; err != nil {
			return err
		}
		if req.Interests != nil {
			if err := tx.Model(&profile).Association("Interests").Replace(domains); err != nil {
				return err
			}
			profile.Interests = domains
		}
		return nil
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save profile")
	}

	code := fiber.StatusOK
	if created {
		code = fiber.StatusCreated
	}
	return response.Success(c, code, newProfileResponse(&profile))
}

func loadLearningDomains(tx *gorm.DB, ids []uint) ([]*models.LearningDomain, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var domains []*models.LearningDomain
	if err := tx.Where("id IN ?", ids).Find(&domains).Error; err != nil {
		return nil, err
	}
	if len(domains) != len(uniqueIDs(ids)) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "interests: One or more learning domains do not exist")
	}
	return domains, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func checkMotivationExists(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.LearningMotivation{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("motivation: Learning motivation %d does not exist", id))
	}
	return nil
}

func checkDailyGoalExists(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.LearningPeriodTarget{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("daily_goal: Learning period target %d does not exist", id))
	}
	return nil
}
