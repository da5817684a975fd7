package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/synergysphere/synergysphere-api/internal/models"
)

func TestCreateProjectMissingFields(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "Alice", "alice@example.com", "pw1")
	tok := env.loginUser(t, "alice@example.com", "pw1")

	w := env.request(t, http.MethodPost, "/api/v1/projects", tok, map[string]string{
		"name": "Apollo",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProjectMakesCreatorOwner(t *testing.T) {
	env := setupTestEnv(t)
	userID := env.registerUser(t, "Alice", "alice@example.com", "pw1")
	tok := env.loginUser(t, "alice@example.com", "pw1")

	projectID := env.createProject(t, tok, "Apollo", "Launch prep")

	var member models.ProjectMember
	err := env.db.Where("project_id = ? AND user_id = ?", projectID, userID).First(&member).Error
	require.NoError(t, err)
	require.Equal(t, models.ProjectRoleOwner, member.Role)
}

func TestProjectAccessDeniedForNonMember(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "Alice", "alice@example.com", "pw1")
	env.registerUser(t, "Bob", "bob@example.com", "pw2")
	aliceTok := env.loginUser(t, "alice@example.com", "pw1")
	bobTok := env.loginUser(t, "bob@example.com", "pw2")

	projectID := env.createProject(t, aliceTok, "Apollo", "Launch prep")
	path := fmt.Sprintf("/api/v1/projects/%d", projectID)

	w := env.request(t, http.MethodGet, path, bobTok, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.request(t, http.MethodGet, path, aliceTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestProjectGetEmbedsMembers(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "Alice", "alice@example.com", "pw1")
	tok := env.loginUser(t, "alice@example.com", "pw1")
	projectID := env.createProject(t, tok, "Apollo", "Launch prep")

	w := env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/projects/%d", projectID), tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"members"`)
	require.Contains(t, w.Body.String(), "Alice")
}

func TestAddMember(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "Alice", "alice@example.com", "pw1")
	bobID := env.registerUser(t, "Bob", "bob@example.com", "pw2")
	aliceTok := env.loginUser(t, "alice@example.com", "pw1")

	projectID := env.createProject(t, aliceTok, "Apollo", "Launch prep")
	path := fmt.Sprintf("/api/v1/projects/%d/members", projectID)

	// unknown user
	w := env.request(t, http.MethodPost, path, aliceTok, map[string]interface{}{"user_id": 9999})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.request(t, http.MethodPost, path, aliceTok, map[string]interface{}{"user_id": bobID})
	require.Equal(t, http.StatusCreated, w.Code)

	// already a member
	w = env.request(t, http.MethodPost, path, aliceTok, map[string]interface{}{"user_id": bobID})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestOnlyOwnerOrAdminCanManageProject(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "Alice", "alice@example.com", "pw1")
	bobID := env.registerUser(t, "Bob", "bob@example.com", "pw2")
	env.registerUser(t, "Carol", "carol@example.com", "pw3")
	aliceTok := env.loginUser(t, "alice@example.com", "pw1")
	bobTok := env.loginUser(t, "bob@example.com", "pw2")

	projectID := env.createProject(t, aliceTok, "Apollo", "Launch prep")
	env.request(t, http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/members", projectID), aliceTok,
		map[string]interface{}{"user_id": bobID})

	// plain member cannot update the project or add members
	w := env.request(t, http.MethodPatch, fmt.Sprintf("/api/v1/projects/%d", projectID), bobTok,
		map[string]string{"name": "Hijacked"})
	require.Equal(t, http.StatusForbidden, w.Code)

	// owner can
	w = env.request(t, http.MethodPatch, fmt.Sprintf("/api/v1/projects/%d", projectID), aliceTok,
		map[string]string{"name": "Apollo 11"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Apollo 11")
}

func TestListProjectsReturnsOnlyMemberships(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "Alice", "alice@example.com", "pw1")
	env.registerUser(t, "Bob", "bob@example.com", "pw2")
	aliceTok := env.loginUser(t, "alice@example.com", "pw1")
	bobTok := env.loginUser(t, "bob@example.com", "pw2")

	env.createProject(t, aliceTok, "Apollo", "Launch prep")
	env.createProject(t, bobTok, "Gemini", "Earlier program")

	w := env.request(t, http.MethodGet, "/api/v1/projects", aliceTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Apollo")
	require.NotContains(t, w.Body.String(), "Gemini")
}
