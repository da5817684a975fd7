package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere-api/internal/config"
	"github.com/synergysphere/synergysphere-api/internal/constants"
	"github.com/synergysphere/synergysphere-api/internal/database"
	"github.com/synergysphere/synergysphere-api/internal/middleware"
	"github.com/synergysphere/synergysphere-api/internal/repository"
	"github.com/synergysphere/synergysphere-api/internal/services"
	"github.com/synergysphere/synergysphere-api/internal/token"
)

// Server bundles the HTTP engine with the services that outlive a request,
// so the caller can schedule background work against them.
type Server struct {
	Engine    *gin.Engine
	Workloads *services.WorkloadService
}

// NewServer wires repositories, services, handlers and routes into a ready
// engine backed by the current database connection.
func NewServer(cfg *config.Config) *Server {
	db := database.GetDB()

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	dependencyRepo := repository.NewDependencyRepository(db)
	workloadRepo := repository.NewWorkloadRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	tunnelRepo := repository.NewTunnelRepository(db)

	tokens := token.NewService(cfg.JWTSecret)

	var aiService *services.AIService
	if cfg.OpenAIAPIKey != "" {
		aiService = services.NewAIService(cfg.OpenAIAPIKey)
	}

	authService := services.NewAuthService(userRepo)
	projectService := services.NewProjectService(projectRepo, userRepo)
	workloadService := services.NewWorkloadService(workloadRepo, taskRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo, commentRepo, workloadService)
	dependencyService := services.NewDependencyService(dependencyRepo, taskRepo, projectRepo)
	moodService := services.NewMoodService(moodRepo, projectRepo)
	tunnelService := services.NewTunnelService(tunnelRepo, taskRepo, projectRepo, aiService, constants.DefaultTunnelThreshold)

	authHandler := NewAuthHandler(authService, tokens)
	userHandler := NewUserHandler(authService, projectService)
	projectHandler := NewProjectHandler(projectService, taskService)
	taskHandler := NewTaskHandler(taskService)
	commentHandler := NewCommentHandler(taskService)
	dependencyHandler := NewDependencyHandler(dependencyService)
	workloadHandler := NewWorkloadHandler(workloadService)
	moodHandler := NewMoodHandler(moodService)
	tunnelHandler := NewTunnelHandler(tunnelService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "SynergySphere API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		api.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"name":    "SynergySphere API",
				"version": "1.0.0",
			})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.RequireAuth(tokens), authHandler.Me)
			auth.POST("/change-password", middleware.RequireAuth(tokens), authHandler.ChangePassword)
		}

		users := api.Group("/users")
		users.Use(middleware.RequireAuth(tokens))
		{
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.Get)
			users.PATCH("/:id", userHandler.Update)
		}

		projects := api.Group("/projects")
		projects.Use(middleware.RequireAuth(tokens))
		{
			projects.GET("", projectHandler.List)
			projects.POST("", projectHandler.Create)
			projects.GET("/:id", middleware.RequireProjectAccess(), projectHandler.Get)
			projects.PATCH("/:id", middleware.RequireProjectAccess(), middleware.RequireProjectManager(), projectHandler.Update)
			projects.POST("/:id/members", middleware.RequireProjectAccess(), middleware.RequireProjectManager(), projectHandler.AddMember)
			projects.GET("/:id/tasks", middleware.RequireProjectAccess(), projectHandler.ListTasks)
		}

		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth(tokens))
		{
			tasks.POST("", taskHandler.Create)
			tasks.GET("/:id", middleware.RequireTaskAccess(), taskHandler.Get)
			tasks.PATCH("/:id", middleware.RequireTaskAccess(), taskHandler.Update)
			tasks.POST("/:id/assignments", middleware.RequireTaskAccess(), taskHandler.Assign)
			tasks.GET("/:id/comments", middleware.RequireTaskAccess(), taskHandler.ListComments)
			tasks.POST("/:id/comments", middleware.RequireTaskAccess(), taskHandler.AddComment)
		}

		comments := api.Group("/comments")
		comments.Use(middleware.RequireAuth(tokens))
		{
			comments.PATCH("/:id", commentHandler.Update)
			comments.DELETE("/:id", commentHandler.Delete)
		}

		dependencies := api.Group("/dependencies")
		dependencies.Use(middleware.RequireAuth(tokens))
		{
			dependencies.POST("", dependencyHandler.Create)
			dependencies.PATCH("/:id", dependencyHandler.Update)
			dependencies.DELETE("/:id", dependencyHandler.Delete)
			dependencies.GET("/tasks/:id", middleware.RequireTaskAccess(), dependencyHandler.TaskView)
		}

		mood := api.Group("/mood")
		mood.Use(middleware.RequireAuth(tokens))
		{
			mood.POST("", moodHandler.Submit)
			mood.GET("/projects/:id", middleware.RequireProjectAccess(), moodHandler.Report)
		}

		workload := api.Group("/workload")
		workload.Use(middleware.RequireAuth(tokens))
		{
			workload.GET("/users/:id", workloadHandler.GetUser)
			workload.PATCH("/:id", workloadHandler.Update)
		}

		tunnels := api.Group("/tunnels")
		tunnels.Use(middleware.RequireAuth(tokens))
		{
			tunnels.GET("", tunnelHandler.List)
			tunnels.POST("/generate", tunnelHandler.Generate)
		}
	}

	return &Server{
		Engine:    r,
		Workloads: workloadService,
	}
}
