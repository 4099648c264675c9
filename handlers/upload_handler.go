package handlers

import (
	"net/url"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	config "github.com/steamupuz/steamup_backend/configs"
	"github.com/steamupuz/steamup_backend/response"
)

const iconUploadFolder = "steamup_icons"

// GenerateIconUploadSignature creates a signed Cloudinary upload ticket so
// staff can push catalog icons straight from the browser.
func GenerateIconUploadSignature(c *fiber.Ctx) error {
	cloudinaryURL := config.Config("CLOUDINARY_URL")
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to initialize Cloudinary")
	}

	parsedURL, err := url.Parse(cloudinaryURL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to parse Cloudinary URL")
	}
	secret, _ := parsedURL.User.Password()

	paramsToSign, err := api.StructToParams(uploader.UploadParams{
		Folder: iconUploadFolder,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to prepare signature params")
	}

	timestamp := time.Now().Unix()
	paramsToSign.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(paramsToSign, secret)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to sign upload params")
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"api_key":   cld.Config.Cloud.APIKey,
		"folder":    iconUploadFolder,
	})
}
