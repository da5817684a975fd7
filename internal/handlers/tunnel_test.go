package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTunnelListRequiresParams(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "Alice", "alice@example.com", "pw1")
	tok := env.loginUser(t, "alice@example.com", "pw1")

	w := env.request(t, http.MethodGet, "/api/v1/tunnels", tok, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1/tunnels?source_type=task", tok, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1/tunnels?source_type=galaxy&source_id=1", tok, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTunnelGenerate(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "Alice", "alice@example.com", "pw1")
	tok := env.loginUser(t, "alice@example.com", "pw1")
	projectID := env.createProject(t, tok, "Apollo", "Launch prep")
	source := env.createTask(t, tok, projectID, "Design heat shield")
	env.createTask(t, tok, projectID, "Test heat shield")
	env.createTask(t, tok, projectID, "Review heat shield")

	// unknown source
	w := env.request(t, http.MethodPost, "/api/v1/tunnels/generate", tok, map[string]interface{}{
		"source_type": "task",
		"source_id":   9999,
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	// project sources are not supported
	w = env.request(t, http.MethodPost, "/api/v1/tunnels/generate", tok, map[string]interface{}{
		"source_type": "project",
		"source_id":   projectID,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// a threshold below the random floor links every other task
	w = env.request(t, http.MethodPost, "/api/v1/tunnels/generate", tok, map[string]interface{}{
		"source_type": "task",
		"source_id":   source,
		"threshold":   0.5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var result struct {
		Generated int `json:"generated"`
		Tunnels   []struct {
			SourceID   uint64  `json:"source_id"`
			TargetID   uint64  `json:"target_id"`
			Similarity float64 `json:"similarity"`
			TargetInfo struct {
				Title string `json:"title"`
			} `json:"target_info"`
		} `json:"tunnels"`
	}
	resp := parseEnvelope(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	require.Equal(t, 2, result.Generated)
	for _, tunnel := range result.Tunnels {
		require.Equal(t, source, tunnel.SourceID)
		require.NotEqual(t, source, tunnel.TargetID)
		require.GreaterOrEqual(t, tunnel.Similarity, 0.6)
		require.LessOrEqual(t, tunnel.Similarity, 1.0)
		require.NotEmpty(t, tunnel.TargetInfo.Title)
	}

	// stored tunnels come back annotated
	w = env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/tunnels?source_type=task&source_id=%d", source), tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "target_info")
}
