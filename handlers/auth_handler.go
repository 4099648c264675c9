package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	config "github.com/steamupuz/steamup_backend/configs"
	"github.com/steamupuz/steamup_backend/database"
	"github.com/steamupuz/steamup_backend/middleware"
	"github.com/steamupuz/steamup_backend/models"
	"github.com/steamupuz/steamup_backend/notifications"
	"github.com/steamupuz/steamup_backend/response"
	"github.com/steamupuz/steamup_backend/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var validate = validator.New()

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`

	// Optional onboarding payload, applied in the same transaction.
	FullName        *string `json:"full_name"`
	Age             *int    `json:"age" validate:"omitempty,gte=0"`
	Interests       []uint  `json:"interests"`
	Motivation      *uint   `json:"motivation"`
	DailyGoal       *uint   `json:"daily_goal"`
	DiscoverySource *string `json:"discovery_source" validate:"omitempty,oneof=google facebook tiktok playstore tv"`
	StemLevel       *string `json:"stem_level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type OTPRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Purpose string `json:"purpose" validate:"required,oneof=verify reset"`
}

type OTPVerificationRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Code    string `json:"code" validate:"required,len=6,numeric"`
	Purpose string `json:"purpose" validate:"required,oneof=verify reset"`
}

type ResetOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordResetRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Code            string `json:"code" validate:"required,len=6,numeric"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

type CredsResponse struct {
	Access     string `json:"access"`
	Refresh    string `json:"refresh"`
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	IsVerified bool   `json:"is_verified"`
}

func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func newCredsResponse(user *models.User, pair utils.TokenPair) CredsResponse {
	return CredsResponse{
		Access:     pair.Access,
		Refresh:    pair.Refresh,
		UserID:     user.ID.String(),
		Email:      user.Email,
		IsVerified: user.IsVerified,
	}
}

func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return err
	}
	if req.Password != req.ConfirmPassword {
		return fiber.NewError(fiber.StatusBadRequest, "Passwords do not match")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := models.User{
		Email:      req.Email,
		Password:   string(hashedPassword),
		IsActive:   true,
		IsVerified: false,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if hasProfilePayload(&req) {
			profile, err := buildProfile(tx, user.ID, &req)
			if err != nil {
				return err
			}
			if err := tx.Create(profile).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusBadRequest, "A user with this email already exists")
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}

	pair, err := utils.IssueTokenPair(&user, jwtSecret(), false)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create token")
	}

	return response.Success(c, fiber.StatusCreated, fiber.Map{
		"user": UserResponse{
			ID:         user.ID.String(),
			Email:      user.Email,
			IsActive:   user.IsActive,
			IsVerified: user.IsVerified,
			CreatedAt:  user.CreatedAt,
		},
		"creds": newCredsResponse(&user, pair),
	})
}

func hasProfilePayload(req *RegisterRequest) bool {
	return req.FullName != nil || req.Age != nil || len(req.Interests) > 0 ||
		req.Motivation != nil || req.DailyGoal != nil ||
		req.DiscoverySource != nil || req.StemLevel != nil
}

func buildProfile(tx *gorm.DB, userID uuid.UUID, req *RegisterRequest) (*models.UserProfile, error) {
	profile := models.UserProfile{
		UserID:          userID,
		DiscoverySource: models.DefaultDiscoverySource,
		StemLevel:       models.DefaultStemLevel,
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

	if len(req.Interests) > 0 {
		domains, err := loadLearningDomains(tx, req.Interests)
		if err != nil {
			return nil, err
		}
		profile.Interests = domains
	}
	if req.Motivation != nil {
		if err := checkMotivationExists(tx, *req.Motivation); err != nil {
			return nil, err
		}
		profile.MotivationID = req.Motivation
	}
	if req.DailyGoal != nil {
		if err := checkDailyGoalExists(tx, *req.DailyGoal); err != nil {
			return nil, err
		}
		profile.DailyGoalID = req.DailyGoal
	}
	return &profile, nil
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.IsActive {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	// Unverified users still get tokens; the client branches on
	// is_verified.
	pair, err := utils.IssueTokenPair(&user, jwtSecret(), req.RememberMe)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create token")
	}

	return response.Success(c, fiber.StatusOK, newCredsResponse(&user, pair))
}

func RefreshToken(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	claims, err := utils.ParseToken(req.Refresh, jwtSecret(), "refresh")
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Token is invalid or expired")
	}

	userID, _ := claims["user_id"].(string)
	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Token is invalid or expired")
	}

	access, err := utils.IssueAccessToken(&user, jwtSecret())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create token")
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{"access": access})
}

func RequestOTP(c *fiber.Ctx) error {
	var req OTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return err
	}
	return issueOTP(c, req.Email, models.OTPPurpose(req.Purpose))
}

// ForgotPassword is request-otp pinned to the reset purpose.
func ForgotPassword(c *fiber.Ctx) error {
	var req EmailRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return err
	}
	return issueOTP(c, req.Email, models.OTPPurposeReset)
}

func issueOTP(c *fiber.Ctx, email string, purpose models.OTPPurpose) error {
	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "User with this email does not exist.")
	}

	var recent models.OTPCode
	err := database.DB.
		Where("user_id = ? AND purpose = ? AND is_used = ? AND created_at >= ?",
			user.ID, purpose, false, time.Now().Add(-models.OTPThrottleWindow)).
		Order("created_at DESC").
		First(&recent).Error
	if err == nil {
		left := int(models.OTPThrottleWindow.Seconds()) - int(time.Since(recent.CreatedAt).Seconds())
		if left < 1 {
			left = 1
		}
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Please wait %d seconds before requesting another OTP.", left))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	code, err := utils.GenerateOTPCode()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate OTP code")
	}

	otp := models.OTPCode{
		UserID:  user.ID,
		Code:    code,
		Purpose: purpose,
	}
	if err := database.DB.Create(&otp).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store OTP code")
	}

	// The OTP row deliberately survives a failed delivery: the client may
	// retry the email, the code is already valid.
	if err := notifications.SendOTPEmail(user.Email, purpose, code, middleware.Lang(c)); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{
		"message": fmt.Sprintf("OTP sent to %s", user.Email),
	})
}

func VerifyOTP(c *fiber.Ctx) error {
	var req OTPVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return err
	}
	return redeemOTP(c, req.Email, req.Code, models.OTPPurpose(req.Purpose))
}

// VerifyResetOTP is verify-otp pinned to the reset purpose.
func VerifyResetOTP(c *fiber.Ctx) error {
	var req ResetOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return err
	}
	return redeemOTP(c, req.Email, req.Code, models.OTPPurposeReset)
}

func findRedeemableOTP(user *models.User, code string, purpose models.OTPPurpose) (*models.OTPCode, error) {
	var otp models.OTPCode
	err := database.DB.
		Where("user_id = ? AND code = ? AND purpose = ? AND is_used = ? AND created_at >= ?",
			user.ID, code, purpose, false, time.Now().Add(-models.OTPLifetime)).
		Order("created_at DESC").
		First(&otp).Error
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

func redeemOTP(c *fiber.Ctx, email, code string, purpose models.OTPPurpose) error {
	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "User with this email does not exist.")
	}

	otp, err := findRedeemableOTP(&user, code, purpose)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid or expired OTP code.")
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(otp).Update("is_used", true).Error; err != nil {
			return err
		}
		if purpose == models.OTPPurposeVerify {
			if err := tx.Model(&user).Update("is_verified", true).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify OTP code")
	}

	message := "OTP verified successfully."
	if purpose == models.OTPPurposeVerify {
		message = "Email verified successfully."
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"message": message})
}

func ResetPassword(c *fiber.Ctx) error {
	var req PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return err
	}
	// Checked before any database access.
	if req.NewPassword != req.ConfirmPassword {
		return fiber.NewError(fiber.StatusBadRequest, "Passwords do not match.")
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "User with this email does not exist.")
	}

	otp, err := findRedeemableOTP(&user, req.Code, models.OTPPurposeReset)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid or expired OTP code.")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash new password")
	}

	// Password change and OTP consumption stand or fall together.
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
			return err
		}
		return tx.Model(otp).Update("is_used", true).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to reset password")
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{"message": "Password reset successfully."})
}

func HasProfile(c *fiber.Ctx) error {
	var req EmailRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return response.Success(c, fiber.StatusOK, fiber.Map{"exists": false})
	}

	var count int64
	if err := database.DB.Model(&models.UserProfile{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check profile")
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"exists": count > 0})
}
