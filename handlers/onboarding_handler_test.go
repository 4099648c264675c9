package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var domainColumns = []string{"id", "title", "icon_url"}
var motivationColumns = []string{"id", "title", "icon_url"}
var targetColumns = []string{"id", "repeat_count", "period_unit", "complement", "icon_url"}

func TestOnboardingOptions_StaticListsAlwaysPresent(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT (.+) FROM "learning_domains"`).
		WillReturnRows(sqlmock.NewRows(domainColumns))
	mock.ExpectQuery(`SELECT (.+) FROM "learning_motivations"`).
		WillReturnRows(sqlmock.NewRows(motivationColumns))
	mock.ExpectQuery(`SELECT (.+) FROM "learning_period_targets"`).
		WillReturnRows(sqlmock.NewRows(targetColumns))

	status, env := getJSON(t, app, "/api/onboarding/options")
	require.Equal(t, fiber.StatusOK, status)

	var opts OnboardingOptionsResponse
	require.NoError(t, json.Unmarshal(env.Data, &opts))

	assert.Len(t, opts.DiscoverySources, 5)
	assert.Len(t, opts.StemLevels, 3)
	assert.Empty(t, opts.Motivations)
	assert.Empty(t, opts.DailyGoals)
	assert.Empty(t, opts.LearningDomains)

	assert.Equal(t, ChoiceOption{Value: "google", Label: "Google"}, opts.DiscoverySources[0])
	assert.Equal(t, ChoiceOption{Value: "beginner", Label: "Beginner"}, opts.StemLevels[0])
}

func TestOnboardingOptions_LocalizedCatalogs(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT (.+) FROM "learning_domains"`).
		WillReturnRows(sqlmock.NewRows(domainColumns).AddRow(1, "Math", nil))
	mock.ExpectQuery(`SELECT (.+) FROM "learning_domain_translations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "learning_domain_id", "language", "name"}).
			AddRow(1, 1, "en", "Mathematics").
			AddRow(2, 1, "ru", "Математика"))
	mock.ExpectQuery(`SELECT (.+) FROM "learning_motivations"`).
		WillReturnRows(sqlmock.NewRows(motivationColumns))
	mock.ExpectQuery(`SELECT (.+) FROM "learning_period_targets"`).
		WillReturnRows(sqlmock.NewRows(targetColumns).AddRow(1, 5, "daily", "Consistent learner", nil))
	mock.ExpectQuery(`SELECT (.+) FROM "learning_period_target_translations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "learning_period_target_id", "language", "complement"}).
			AddRow(1, 1, "ru", "Постоянный ученик"))

	req := httptest.NewRequest("GET", "/api/onboarding/options", nil)
	req.Header.Set("Accept-Language", "ru")
	status, env := doJSON(t, app, req)
	require.Equal(t, fiber.StatusOK, status)

	var opts OnboardingOptionsResponse
	require.NoError(t, json.Unmarshal(env.Data, &opts))

	require.Len(t, opts.LearningDomains, 1)
	assert.Equal(t, "Математика", opts.LearningDomains[0].Title)

	require.Len(t, opts.DailyGoals, 1)
	assert.Equal(t, "5 / день", opts.DailyGoals[0].Title)
	assert.Equal(t, "Постоянный ученик", opts.DailyGoals[0].Comment)

	assert.Equal(t, "Начинающий", opts.StemLevels[0].Label)
	assert.NoError(t, mock.ExpectationsWereMet())
}
