package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/projectdesk/projectdesk/internal/auth"
	"github.com/projectdesk/projectdesk/internal/config"
	"github.com/projectdesk/projectdesk/internal/handlers"
	"github.com/projectdesk/projectdesk/internal/middleware"
	"github.com/projectdesk/projectdesk/internal/services"
)

func NewRouter(database *gorm.DB, cfg *config.Config, log *zap.Logger) *gin.Engine {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	tm := auth.NewTokenManager(cfg.JWTSecret)

	projectSvc := services.NewProjectService(database, log)
	taskSvc := services.NewTaskService(database, log)
	jobSvc := services.NewJobService(database, log)
	personSvc := services.NewPersonService(database, log)

	projectHandler := handlers.NewProjectHandler(projectSvc, log)
	taskHandler := handlers.NewTaskHandler(taskSvc, log)
	jobHandler := handlers.NewJobHandler(jobSvc, log)
	personHandler := handlers.NewPersonHandler(personSvc, log)
	authHandler := handlers.NewAuthHandler(personSvc, tm, log)

	authRequired := middleware.AuthMiddleware(database, tm)

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", authRequired, authHandler.Me)
			authGroup.POST("/logout", authRequired, authHandler.Logout)
		}

		projects := api.Group("/projects", authRequired)
		{
			projects.GET("", projectHandler.List)
			projects.POST("", projectHandler.Create)
			projects.GET("/:id", projectHandler.Get)
			projects.PUT("/:id", projectHandler.Update)
			projects.DELETE("/:id", projectHandler.Delete)

			projects.GET("/:id/tasks", projectHandler.ListTasks)
			projects.GET("/:id/jobs", projectHandler.ListJobs)
			projects.GET("/:id/people", projectHandler.ListPeople)
		}

		tasks := api.Group("/tasks", authRequired)
		{
			tasks.GET("", taskHandler.List)
			tasks.POST("", taskHandler.Create)
			tasks.GET("/:id", taskHandler.Get)
			tasks.PUT("/:id", taskHandler.Update)
			tasks.DELETE("/:id", taskHandler.Delete)

			tasks.POST("/:id/assign", taskHandler.Assign)
			tasks.DELETE("/:id/assign/:userId", taskHandler.Unassign)
		}

		jobs := api.Group("/jobs", authRequired)
		{
			jobs.GET("", jobHandler.List)
			jobs.POST("", jobHandler.Create)
			jobs.GET("/:id", jobHandler.Get)
			jobs.PUT("/:id", jobHandler.Update)
			jobs.DELETE("/:id", jobHandler.Delete)
		}

		people := api.Group("/people", authRequired)
		{
			people.GET("", personHandler.List)
			people.POST("", personHandler.Create)
			people.GET("/:id", personHandler.Get)
			people.PUT("/:id", personHandler.Update)
			people.DELETE("/:id", middleware.RequireRole("admin"), personHandler.Delete)
		}
	}

	return r
}
