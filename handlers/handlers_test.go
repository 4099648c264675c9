package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/steamupuz/steamup_backend/database"
	"github.com/steamupuz/steamup_backend/middleware"
	"github.com/steamupuz/steamup_backend/models"
	"github.com/steamupuz/steamup_backend/response"
	"github.com/steamupuz/steamup_backend/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *string         `json:"error"`
	Code  int             `json:"code"`
}

var userColumns = []string{"id", "email", "password", "is_active", "is_verified", "is_staff", "created_at", "updated_at"}

var otpColumns = []string{"id", "user_id", "code", "purpose", "is_used", "created_at"}

// newTestApp wires a fiber app over a sqlmock-backed gorm connection. The
// handlers are mounted directly to avoid pulling the whole routes package
// into the test.
func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db, PreferSimpleProtocol: true}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	database.DB = gdb

	app := fiber.New(fiber.Config{ErrorHandler: response.ErrorHandler})
	app.Use(middleware.Locale())

	auth := app.Group("/api/auth")
	auth.Post("/register", Register)
	auth.Post("/login", Login)
	auth.Post("/token/refresh", RefreshToken)
	auth.Post("/request-otp", RequestOTP)
	auth.Post("/verify-otp", VerifyOTP)
	auth.Post("/forgot-password", ForgotPassword)
	auth.Post("/verify-reset-otp", VerifyResetOTP)
	auth.Post("/reset-password", ResetPassword)
	auth.Post("/has-profile", HasProfile)

	profile := app.Group("/api/profile", middleware.Protected())
	profile.Get("/", GetProfile)
	profile.Post("/", UpsertProfile)
	profile.Put("/", UpsertProfile)
	profile.Patch("/", UpsertProfile)

	cfg := app.Group("/api/config")
	cfg.Get("/", ListConfig)
	cfg.Get("/theme", Theme)

	app.Get("/api/onboarding/options", OnboardingOptions)

	return app, mock
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (int, envelope) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return doJSON(t, app, req)
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, envelope) {
	t.Helper()
	return doJSON(t, app, httptest.NewRequest("GET", path, nil))
}

func doJSON(t *testing.T, app *fiber.App, req *http.Request) (int, envelope) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

// accessTokenFor signs an access token with the harness secret so protected
// routes can be exercised without the login flow.
func accessTokenFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	user := &models.User{ID: userID, Email: "student@example.com", IsActive: true, IsVerified: true}
	token, err := utils.IssueAccessToken(user, []byte("test-secret"))
	require.NoError(t, err)
	return token
}

func authedJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) (int, envelope) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return doJSON(t, app, req)
}

func userRow(id, email, passwordHash string, verified bool) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userColumns).
		AddRow(id, email, passwordHash, true, verified, false, now, now)
}
