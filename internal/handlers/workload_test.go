package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkloadSelfOrAdmin(t *testing.T) {
	env := setupTestEnv(t)
	aliceID := env.registerUser(t, "Alice", "alice@example.com", "pw1")
	env.registerUser(t, "Bob", "bob@example.com", "pw2")
	env.registerAdmin(t, "Root", "root@example.com", "pw0")
	bobTok := env.loginUser(t, "bob@example.com", "pw2")
	adminTok := env.loginUser(t, "root@example.com", "pw0")

	path := fmt.Sprintf("/api/v1/workload/users/%d", aliceID)

	w := env.request(t, http.MethodGet, path, bobTok, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.request(t, http.MethodGet, path, adminTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateWorkloadHours(t *testing.T) {
	env := setupTestEnv(t)
	aliceID := env.registerUser(t, "Alice", "alice@example.com", "pw1")
	bobID := env.registerUser(t, "Bob", "bob@example.com", "pw2")
	aliceTok := env.loginUser(t, "alice@example.com", "pw1")
	bobTok := env.loginUser(t, "bob@example.com", "pw2")

	projectID := env.createProject(t, aliceTok, "Apollo", "Launch prep")
	env.request(t, http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/members", projectID), aliceTok,
		map[string]interface{}{"user_id": bobID})
	taskID := env.createTask(t, aliceTok, projectID, "Design heat shield")
	env.request(t, http.MethodPost, fmt.Sprintf("/api/v1/tasks/%d/assignments", taskID), aliceTok,
		map[string]interface{}{"user_id": aliceID})

	w := env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/workload/users/%d", aliceID), aliceTok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var workloads []struct {
		ID uint64 `json:"workload_id"`
	}
	resp := parseEnvelope(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, &workloads))
	require.Len(t, workloads, 1)

	path := fmt.Sprintf("/api/v1/workload/%d", workloads[0].ID)

	// another member cannot override the row
	w = env.request(t, http.MethodPatch, path, bobTok, map[string]interface{}{"estimated_hours": 12})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.request(t, http.MethodPatch, path, aliceTok, map[string]interface{}{"estimated_hours": -3})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodPatch, path, aliceTok, map[string]interface{}{"estimated_hours": 12})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"estimated_hours":12`)

	// unknown row
	w = env.request(t, http.MethodPatch, "/api/v1/workload/9999", aliceTok, map[string]interface{}{"estimated_hours": 8})
	require.Equal(t, http.StatusNotFound, w.Code)
}
