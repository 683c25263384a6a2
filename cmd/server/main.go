package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/ludhill/avbackfronttodolistcrud/internal/config"
	"github.com/ludhill/avbackfronttodolistcrud/internal/constants"
	"github.com/ludhill/avbackfronttodolistcrud/internal/database"
	"github.com/ludhill/avbackfronttodolistcrud/internal/handlers"
	"github.com/ludhill/avbackfronttodolistcrud/internal/middleware"
	"github.com/ludhill/avbackfronttodolistcrud/internal/repository"
	"github.com/ludhill/avbackfronttodolistcrud/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware
	store, err := newSessionStore(cfg)
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   isProduction, // true in production (HTTPS), false in development
		SameSite: 2,            // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(database.GetDB())
	listRepo := repository.NewTodoListRepository(database.GetDB())
	taskRepo := repository.NewTaskRepository(database.GetDB())
	authService := services.NewAuthService(userRepo)
	todoService := services.NewTodoService(listRepo, taskRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	listHandler := handlers.NewTodoListHandler(todoService)
	taskHandler := handlers.NewTaskHandler(todoService)

	// Resolve the acting user on every request
	r.Use(middleware.CurrentUser(authService))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Todo list app is running",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.GET("/register", authHandler.RegisterForm)
		auth.POST("/register", authHandler.Register)
		auth.GET("/login", authHandler.LoginForm)
		auth.POST("/login", authHandler.Login)
		auth.GET("/logout", authHandler.Logout)
		auth.GET("/me", middleware.RequireAuth(), authHandler.Me)
	}

	// The index is reachable anonymously and then shows no lists
	r.GET("/", listHandler.Index)

	// Protected routes redirect anonymous callers to the login page
	protected := r.Group("", middleware.RequireAuth())
	{
		protected.GET("/create_list", listHandler.CreateForm)
		protected.POST("/create_list", listHandler.Create)

		// Routes targeting one list, guarded by the ownership check
		list := protected.Group("/:list_id", middleware.RequireListOwner(todoService))
		{
			list.GET("/update_list", listHandler.EditForm)
			list.POST("/update_list", listHandler.Update)
			list.POST("/delete_list", listHandler.Delete)
			list.GET("/tasks", taskHandler.ListTasks)
			list.GET("/create_task", taskHandler.CreateForm)
			list.POST("/create_task", taskHandler.Create)
		}

		// Routes targeting one task within a list
		task := protected.Group("/:list_id/:task_id", middleware.RequireTaskOwner(todoService))
		{
			task.GET("/update_task", taskHandler.EditForm)
			task.POST("/update_task", taskHandler.Update)
			task.POST("/toggle_task", taskHandler.Toggle)
			task.POST("/delete_task", taskHandler.Delete)
		}
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newSessionStore builds the session backend selected by configuration:
// an encrypted cookie by default, Redis when configured.
func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	switch cfg.SessionStore {
	case "cookie":
		return cookie.NewStore([]byte(cfg.SessionSecret)), nil
	case "redis":
		redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
		return redisStore.NewStore(
			10,        // Redis pool size
			"tcp",     // network type
			redisAddr, // Redis address from config
			"",        // username (empty for default user)
			"",        // password (empty = no password)
			[]byte(cfg.SessionSecret), // authentication key
		)
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}
