package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubmitMoodValidation(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "Alice", "alice@example.com", "pw1")
	tok := env.loginUser(t, "alice@example.com", "pw1")
	projectID := env.createProject(t, tok, "Apollo", "Launch prep")

	w := env.request(t, http.MethodPost, "/api/v1/mood", tok, map[string]interface{}{
		"project_id": projectID,
		"mood_value": 6,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodPost, "/api/v1/mood", tok, map[string]interface{}{
		"project_id": projectID,
		"mood_value": 4,
		"comment":    "Good sprint",
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestMoodSubmitRequiresMembership(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "Alice", "alice@example.com", "pw1")
	env.registerUser(t, "Bob", "bob@example.com", "pw2")
	aliceTok := env.loginUser(t, "alice@example.com", "pw1")
	bobTok := env.loginUser(t, "bob@example.com", "pw2")
	projectID := env.createProject(t, aliceTok, "Apollo", "Launch prep")

	w := env.request(t, http.MethodPost, "/api/v1/mood", bobTok, map[string]interface{}{
		"project_id": projectID,
		"mood_value": 3,
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestMoodReportAveragesByDay(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "Alice", "alice@example.com", "pw1")
	tok := env.loginUser(t, "alice@example.com", "pw1")
	projectID := env.createProject(t, tok, "Apollo", "Launch prep")

	for _, submission := range []map[string]interface{}{
		{"project_id": projectID, "mood_value": 4, "comment": "steady"},
		{"project_id": projectID, "mood_value": 5},
	} {
		w := env.request(t, http.MethodPost, "/api/v1/mood", tok, submission)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/mood/projects/%d", projectID), tok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var report struct {
		ProjectID   uint64 `json:"project_id"`
		ProjectName string `json:"project_name"`
		MoodData    []struct {
			Date        string   `json:"date"`
			AverageMood float64  `json:"average_mood"`
			MoodCount   int      `json:"mood_count"`
			Comments    []string `json:"comments"`
		} `json:"mood_data"`
	}
	resp := parseEnvelope(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, &report))

	require.Equal(t, projectID, report.ProjectID)
	require.Equal(t, "Apollo", report.ProjectName)
	require.Len(t, report.MoodData, 1)
	require.InDelta(t, 4.5, report.MoodData[0].AverageMood, 0.0001)
	require.Equal(t, 2, report.MoodData[0].MoodCount)
	require.Equal(t, []string{"steady"}, report.MoodData[0].Comments)
}
