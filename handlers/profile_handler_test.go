package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var profileColumns = []string{"id", "user_id", "full_name", "age", "motivation_id", "daily_goal_id", "discovery_source", "stem_level", "created_at", "updated_at"}

var interestJoinColumns = []string{"user_profile_id", "learning_domain_id"}

func profileRow(id, userID, fullName string, age int) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(profileColumns).
		AddRow(id, userID, fullName, age, nil, nil, "google", "beginner", now, now)
}

func decodeProfile(t *testing.T, env envelope) ProfileResponse {
	t.Helper()
	var profile ProfileResponse
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	return profile
}

func TestGetProfile_MissingToken(t *testing.T) {
	app, mock := newTestApp(t)

	status, env := doJSON(t, app, httptest.NewRequest("GET", "/api/profile/", nil))

	assert.Equal(t, fiber.StatusUnauthorized, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Missing or malformed JWT", *env.Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfile_FirstAccessCreatesDefaults(t *testing.T) {
	app, mock := newTestApp(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "user_profiles" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows(profileColumns))
	mock.ExpectQuery(`INSERT INTO "user_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))

	status, env := authedJSON(t, app, "GET", "/api/profile/", accessTokenFor(t, userID), nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Nil(t, env.Error)

	profile := decodeProfile(t, env)
	assert.Equal(t, "", profile.FullName)
	assert.Equal(t, 0, profile.Age)
	assert.Equal(t, "google", profile.DiscoverySource)
	assert.Equal(t, "beginner", profile.StemLevel)
	assert.Empty(t, profile.Interests)
	assert.Nil(t, profile.Motivation)
	assert.Nil(t, profile.DailyGoal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfile_ConcurrentCreateAdoptsWinner(t *testing.T) {
	app, mock := newTestApp(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "user_profiles" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows(profileColumns))
	mock.ExpectQuery(`INSERT INTO "user_profiles"`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectQuery(`SELECT (.+) FROM "user_profiles" WHERE user_id =`).
		WillReturnRows(profileRow(uuid.NewString(), userID.String(), "Ada", 9))
	mock.ExpectQuery(`SELECT (.+) FROM "user_profile_interests"`).
		WillReturnRows(sqlmock.NewRows(interestJoinColumns))

	status, env := authedJSON(t, app, "GET", "/api/profile/", accessTokenFor(t, userID), nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Nil(t, env.Error)

	profile := decodeProfile(t, env)
	assert.Equal(t, "Ada", profile.FullName)
	assert.Equal(t, 9, profile.Age)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfile_ExistingRowWithInterests(t *testing.T) {
	app, mock := newTestApp(t)
	userID := uuid.New()
	profileID := uuid.NewString()

	mock.ExpectQuery(`SELECT (.+) FROM "user_profiles" WHERE user_id =`).
		WillReturnRows(profileRow(profileID, userID.String(), "Ada", 9))
	mock.ExpectQuery(`SELECT (.+) FROM "user_profile_interests"`).
		WillReturnRows(sqlmock.NewRows(interestJoinColumns).AddRow(profileID, 3))
	mock.ExpectQuery(`SELECT (.+) FROM "learning_domains"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "icon_url"}).AddRow(3, "Robotics", nil))

	status, env := authedJSON(t, app, "GET", "/api/profile/", accessTokenFor(t, userID), nil)

	assert.Equal(t, fiber.StatusOK, status)
	profile := decodeProfile(t, env)
	assert.Equal(t, []uint{3}, profile.Interests)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertProfile_ReplacesInterests(t *testing.T) {
	app, mock := newTestApp(t)
	userID := uuid.New()
	profileID := uuid.NewString()

	mock.ExpectQuery(`SELECT (.+) FROM "user_profiles" WHERE user_id =`).
		WillReturnRows(profileRow(profileID, userID.String(), "Ada", 9))
	mock.ExpectQuery(`SELECT (.+) FROM "user_profile_interests"`).
		WillReturnRows(sqlmock.NewRows(interestJoinColumns))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "learning_domains" WHERE id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "icon_url"}).
			AddRow(1, "Math", nil).
			AddRow(2, "Robotics", nil))
	mock.ExpectExec(`UPDATE "user_profiles" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "learning_domains"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectExec(`INSERT INTO "user_profile_interests"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "user_profile_interests"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	status, env := authedJSON(t, app, "PATCH", "/api/profile/", accessTokenFor(t, userID), fiber.Map{
		"interests": []uint{1, 2},
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Nil(t, env.Error)

	profile := decodeProfile(t, env)
	assert.Equal(t, []uint{1, 2}, profile.Interests)
	assert.Equal(t, "Ada", profile.FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertProfile_UnknownInterestRejected(t *testing.T) {
	app, mock := newTestApp(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "user_profiles" WHERE user_id =`).
		WillReturnRows(profileRow(uuid.NewString(), userID.String(), "Ada", 9))
	mock.ExpectQuery(`SELECT (.+) FROM "user_profile_interests"`).
		WillReturnRows(sqlmock.NewRows(interestJoinColumns))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "learning_domains" WHERE id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "icon_url"}).AddRow(1, "Math", nil))
	mock.ExpectRollback()

	status, env := authedJSON(t, app, "PATCH", "/api/profile/", accessTokenFor(t, userID), fiber.Map{
		"interests": []uint{1, 99},
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "interests: One or more learning domains do not exist", *env.Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertProfile_UnknownMotivationRejected(t *testing.T) {
	app, mock := newTestApp(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "user_profiles" WHERE user_id =`).
		WillReturnRows(profileRow(uuid.NewString(), userID.String(), "Ada", 9))
	mock.ExpectQuery(`SELECT (.+) FROM "user_profile_interests"`).
		WillReturnRows(sqlmock.NewRows(interestJoinColumns))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "learning_motivations"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	status, env := authedJSON(t, app, "PATCH", "/api/profile/", accessTokenFor(t, userID), fiber.Map{
		"motivation": 99,
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "motivation: Learning motivation 99 does not exist", *env.Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertProfile_InvalidStemLevel(t *testing.T) {
	app, mock := newTestApp(t)

	status, env := authedJSON(t, app, "PATCH", "/api/profile/", accessTokenFor(t, uuid.New()), fiber.Map{
		"stem_level": "expert",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Contains(t, *env.Error, "stem_level")
	assert.NoError(t, mock.ExpectationsWereMet())
}
