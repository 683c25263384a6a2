package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/ludhill/avbackfronttodolistcrud/internal/constants"
	"github.com/ludhill/avbackfronttodolistcrud/internal/database"
	"github.com/ludhill/avbackfronttodolistcrud/internal/middleware"
	"github.com/ludhill/avbackfronttodolistcrud/internal/models"
	"github.com/ludhill/avbackfronttodolistcrud/internal/repository"
	"github.com/ludhill/avbackfronttodolistcrud/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testApp wires the full application against an in-memory database, the
// same way cmd/server does, so middleware and session handling are
// exercised end to end.
type testApp struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
	todoService *services.TodoService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.TodoList{},
		&models.Task{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	listRepo := repository.NewTodoListRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	authService := services.NewAuthService(userRepo)
	todoService := services.NewTodoService(listRepo, taskRepo)

	authHandler := NewAuthHandler(authService)
	listHandler := NewTodoListHandler(todoService)
	taskHandler := NewTaskHandler(todoService)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.Use(middleware.CurrentUser(authService))

	auth := r.Group("/auth")
	{
		auth.GET("/register", authHandler.RegisterForm)
		auth.POST("/register", authHandler.Register)
		auth.GET("/login", authHandler.LoginForm)
		auth.POST("/login", authHandler.Login)
		auth.GET("/logout", authHandler.Logout)
		auth.GET("/me", middleware.RequireAuth(), authHandler.Me)
	}

	r.GET("/", listHandler.Index)

	protected := r.Group("", middleware.RequireAuth())
	{
		protected.GET("/create_list", listHandler.CreateForm)
		protected.POST("/create_list", listHandler.Create)

		list := protected.Group("/:list_id", middleware.RequireListOwner(todoService))
		{
			list.GET("/update_list", listHandler.EditForm)
			list.POST("/update_list", listHandler.Update)
			list.POST("/delete_list", listHandler.Delete)
			list.GET("/tasks", taskHandler.ListTasks)
			list.GET("/create_task", taskHandler.CreateForm)
			list.POST("/create_task", taskHandler.Create)
		}

		task := protected.Group("/:list_id/:task_id", middleware.RequireTaskOwner(todoService))
		{
			task.GET("/update_task", taskHandler.EditForm)
			task.POST("/update_task", taskHandler.Update)
			task.POST("/toggle_task", taskHandler.Toggle)
			task.POST("/delete_task", taskHandler.Delete)
		}
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &testApp{
		db:          db,
		router:      r,
		authService: authService,
		todoService: todoService,
	}
}

// listPath builds a list-scoped route like /3/update_list.
func listPath(listID uint64, action string) string {
	return fmt.Sprintf("/%d/%s", listID, action)
}

// taskPath builds a task-scoped route like /3/7/toggle_task.
func taskPath(listID, taskID uint64, action string) string {
	return fmt.Sprintf("/%d/%d/%s", listID, taskID, action)
}

// do runs one request through the router. A non-nil body is sent as JSON;
// cookies carry the session between calls.
func (a *testApp) do(t *testing.T, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// register creates a user through the service layer.
func (a *testApp) register(t *testing.T, username, password string) *models.User {
	t.Helper()

	user, err := a.authService.Register(services.RegisterInput{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

// login authenticates through the real login route and returns the
// session cookies for follow-up requests.
func (a *testApp) login(t *testing.T, username, password string) []*http.Cookie {
	t.Helper()

	w := a.do(t, http.MethodPost, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
	return cookies
}
