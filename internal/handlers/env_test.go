package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/synergysphere/synergysphere-api/internal/config"
	"github.com/synergysphere/synergysphere-api/internal/database"
	"github.com/synergysphere/synergysphere-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	server *Server
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectMember{},
		&models.Task{},
		&models.TaskAssignment{},
		&models.TaskComment{},
		&models.TaskDependency{},
		&models.Workload{},
		&models.MoodPulse{},
		&models.Tunnel{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	cfg := &config.Config{
		JWTSecret: "test-secret",
		GinMode:   gin.TestMode,
	}
	server := NewServer(cfg)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return testEnv{
		db:     db,
		server: server,
	}
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Data    json.RawMessage `json:"data"`
}

func (env testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.server.Engine.ServeHTTP(w, req)
	return w
}

func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// registerUser creates an account through the API and returns its ID.
func (env testEnv) registerUser(t *testing.T, name, email, password string) uint64 {
	t.Helper()

	w := env.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var user struct {
		ID uint64 `json:"user_id"`
	}
	resp := parseEnvelope(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	return user.ID
}

// loginUser authenticates through the API and returns the bearer token.
func (env testEnv) loginUser(t *testing.T, email, password string) string {
	t.Helper()

	w := env.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := parseEnvelope(t, w)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// createProject creates a project through the API and returns its ID.
func (env testEnv) createProject(t *testing.T, token, name, description string) uint64 {
	t.Helper()

	w := env.request(t, http.MethodPost, "/api/v1/projects", token, map[string]string{
		"name":        name,
		"description": description,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var project struct {
		ID uint64 `json:"project_id"`
	}
	resp := parseEnvelope(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, &project))
	return project.ID
}

// createTask creates a task through the API and returns its ID.
func (env testEnv) createTask(t *testing.T, token string, projectID uint64, title string) uint64 {
	t.Helper()

	w := env.request(t, http.MethodPost, "/api/v1/tasks", token, map[string]interface{}{
		"project_id":  projectID,
		"title":       title,
		"description": "test task",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var task struct {
		ID uint64 `json:"task_id"`
	}
	resp := parseEnvelope(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, &task))
	return task.ID
}
