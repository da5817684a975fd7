package client

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/synergysphere/synergysphere-api/internal/config"
	"github.com/synergysphere/synergysphere-api/internal/database"
	"github.com/synergysphere/synergysphere-api/internal/handlers"
	"github.com/synergysphere/synergysphere-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func startTestServer(t *testing.T) *httptest.Server {
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

	srv := handlers.NewServer(&config.Config{
		JWTSecret: "test-secret",
		GinMode:   gin.TestMode,
	})

	ts := httptest.NewServer(srv.Engine)
	t.Cleanup(ts.Close)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return ts
}

func TestClientErrorNormalization(t *testing.T) {
	ts := startTestServer(t)
	ctx := context.Background()
	c := New(ts.URL)

	_, err := c.Me(ctx)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 401, apiErr.StatusCode)
	require.Equal(t, "No token provided", apiErr.Message)

	_, err = c.Login(ctx, "nobody@example.com", "pw")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 401, apiErr.StatusCode)
}

func TestClientFullWorkflow(t *testing.T) {
	ts := startTestServer(t)
	ctx := context.Background()

	alice := New(ts.URL)
	bob := New(ts.URL)

	aliceUser, err := alice.Register(ctx, "Alice", "alice@example.com", "pw1")
	require.NoError(t, err)
	require.Equal(t, "Alice", aliceUser.Name)

	bobUser, err := bob.Register(ctx, "Bob", "bob@example.com", "pw2")
	require.NoError(t, err)

	loggedIn, err := alice.Login(ctx, "alice@example.com", "pw1")
	require.NoError(t, err)
	require.Equal(t, aliceUser.ID, loggedIn.ID)
	_, err = bob.Login(ctx, "bob@example.com", "pw2")
	require.NoError(t, err)

	me, err := alice.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", me.Email)

	project, err := alice.CreateProject(ctx, "Apollo", "Launch prep")
	require.NoError(t, err)

	// Bob is locked out until Alice adds him
	_, err = bob.ListProjectTasks(ctx, project.ID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 403, apiErr.StatusCode)

	require.NoError(t, alice.AddProjectMember(ctx, project.ID, bobUser.ID, ""))

	task, err := alice.CreateTask(ctx, project.ID, "Design heat shield", "Ablative design study")
	require.NoError(t, err)
	require.Equal(t, "todo", task.Status)

	blocker, err := alice.CreateTask(ctx, project.ID, "Procure materials", "Order ablative tiles")
	require.NoError(t, err)

	require.NoError(t, alice.AssignTask(ctx, task.ID, bobUser.ID))

	comment, err := bob.AddComment(ctx, task.ID, "Starting on this today")
	require.NoError(t, err)
	require.Equal(t, "Bob", comment.UserName)

	comments, err := alice.ListComments(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)

	require.NoError(t, alice.CreateDependency(ctx, task.ID, blocker.ID))

	require.NoError(t, bob.SubmitMood(ctx, project.ID, 4, "Good kickoff"))

	workloads, err := bob.UserWorkload(ctx, bobUser.ID)
	require.NoError(t, err)
	require.Len(t, workloads, 1)
	require.Equal(t, 1, workloads[0].TaskCount)
	require.Equal(t, 5, workloads[0].EstimatedHours)

	tunnels, err := alice.ListTunnels(ctx, "task", task.ID)
	require.NoError(t, err)
	require.NotNil(t, tunnels)
}
