package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateDependencyUnknownTask(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "Alice", "alice@example.com", "pw1")
	tok := env.loginUser(t, "alice@example.com", "pw1")
	projectID := env.createProject(t, tok, "Apollo", "Launch prep")
	taskID := env.createTask(t, tok, projectID, "Design heat shield")

	w := env.request(t, http.MethodPost, "/api/v1/dependencies", tok, map[string]interface{}{
		"task_id":    taskID,
		"blocked_by": 9999,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "One or both tasks not found", parseEnvelope(t, w).Message)
}

func TestDependencyLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "Alice", "alice@example.com", "pw1")
	tok := env.loginUser(t, "alice@example.com", "pw1")
	projectID := env.createProject(t, tok, "Apollo", "Launch prep")
	blocked := env.createTask(t, tok, projectID, "Integrate heat shield")
	blocking := env.createTask(t, tok, projectID, "Design heat shield")

	w := env.request(t, http.MethodPost, "/api/v1/dependencies", tok, map[string]interface{}{
		"task_id":    blocked,
		"blocked_by": blocking,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var dependency struct {
		ID     uint64 `json:"dependency_id"`
		Status string `json:"status"`
	}
	resp := parseEnvelope(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, &dependency))
	require.Equal(t, "blocked", dependency.Status)

	// one-hop view in both directions
	w = env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/dependencies/tasks/%d", blocked), tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Design heat shield")

	w = env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/dependencies/tasks/%d", blocking), tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Integrate heat shield")

	// invalid status
	path := fmt.Sprintf("/api/v1/dependencies/%d", dependency.ID)
	w = env.request(t, http.MethodPatch, path, tok, map[string]string{"status": "done"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodPatch, path, tok, map[string]string{"status": "resolved"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "resolved")

	w = env.request(t, http.MethodDelete, path, tok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodDelete, path, tok, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDependencyRequiresMembershipOfBothProjects(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "Alice", "alice@example.com", "pw1")
	env.registerUser(t, "Bob", "bob@example.com", "pw2")
	aliceTok := env.loginUser(t, "alice@example.com", "pw1")
	bobTok := env.loginUser(t, "bob@example.com", "pw2")

	aliceProject := env.createProject(t, aliceTok, "Apollo", "Launch prep")
	bobProject := env.createProject(t, bobTok, "Gemini", "Earlier program")
	aliceTask := env.createTask(t, aliceTok, aliceProject, "Design heat shield")
	bobTask := env.createTask(t, bobTok, bobProject, "Review docking plan")

	w := env.request(t, http.MethodPost, "/api/v1/dependencies", aliceTok, map[string]interface{}{
		"task_id":    aliceTask,
		"blocked_by": bobTask,
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}
