package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func (env testEnv) registerAdmin(t *testing.T, name, email, password string) uint64 {
	t.Helper()

	w := env.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     "admin",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var user struct {
		ID uint64 `json:"user_id"`
	}
	resp := parseEnvelope(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	return user.ID
}

func TestListUsersAdminOnly(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "Alice", "alice@example.com", "pw1")
	env.registerAdmin(t, "Root", "root@example.com", "pw0")
	aliceTok := env.loginUser(t, "alice@example.com", "pw1")
	adminTok := env.loginUser(t, "root@example.com", "pw0")

	w := env.request(t, http.MethodGet, "/api/v1/users", aliceTok, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1/users", adminTok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Users      []json.RawMessage `json:"users"`
		Page       int               `json:"page"`
		TotalCount int64             `json:"total_count"`
	}
	resp := parseEnvelope(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Equal(t, 1, list.Page)
	require.Equal(t, int64(2), list.TotalCount)
	require.Len(t, list.Users, 2)
}

func TestListUsersPagination(t *testing.T) {
	env := setupTestEnv(t)
	env.registerAdmin(t, "Root", "root@example.com", "pw0")
	for i := 0; i < 5; i++ {
		env.registerUser(t, fmt.Sprintf("User%d", i), fmt.Sprintf("user%d@example.com", i), "pw")
	}
	adminTok := env.loginUser(t, "root@example.com", "pw0")

	w := env.request(t, http.MethodGet, "/api/v1/users?page=2&limit=2", adminTok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Users      []json.RawMessage `json:"users"`
		Page       int               `json:"page"`
		PageSize   int               `json:"page_size"`
		TotalCount int64             `json:"total_count"`
		TotalPages int               `json:"total_pages"`
	}
	resp := parseEnvelope(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Equal(t, 2, list.Page)
	require.Equal(t, 2, list.PageSize)
	require.Equal(t, int64(6), list.TotalCount)
	require.Equal(t, 3, list.TotalPages)
	require.Len(t, list.Users, 2)
}

func TestGetUserSelfOrAdmin(t *testing.T) {
	env := setupTestEnv(t)
	aliceID := env.registerUser(t, "Alice", "alice@example.com", "pw1")
	bobID := env.registerUser(t, "Bob", "bob@example.com", "pw2")
	env.registerAdmin(t, "Root", "root@example.com", "pw0")
	aliceTok := env.loginUser(t, "alice@example.com", "pw1")
	adminTok := env.loginUser(t, "root@example.com", "pw0")

	// another member's profile is off limits
	w := env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", bobID), aliceTok, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// self includes project memberships
	env.createProject(t, aliceTok, "Apollo", "Launch prep")
	w = env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", aliceID), aliceTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Apollo")
	require.Contains(t, w.Body.String(), `"role":"owner"`)

	// admin can read anyone
	w = env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", bobID), adminTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateUser(t *testing.T) {
	env := setupTestEnv(t)
	aliceID := env.registerUser(t, "Alice", "alice@example.com", "pw1")
	bobID := env.registerUser(t, "Bob", "bob@example.com", "pw2")
	aliceTok := env.loginUser(t, "alice@example.com", "pw1")

	w := env.request(t, http.MethodPatch, fmt.Sprintf("/api/v1/users/%d", bobID), aliceTok,
		map[string]string{"name": "Hijack"})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.request(t, http.MethodPatch, fmt.Sprintf("/api/v1/users/%d", aliceID), aliceTok,
		map[string]string{"name": "Alice Cooper"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Alice Cooper")

	// taken email is a conflict
	w = env.request(t, http.MethodPatch, fmt.Sprintf("/api/v1/users/%d", aliceID), aliceTok,
		map[string]string{"email": "bob@example.com"})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestHealthAndBanner(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "SynergySphere")
}
