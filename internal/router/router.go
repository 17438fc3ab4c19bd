package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tickfile-dev/tickfile/internal/auth"
	"github.com/tickfile-dev/tickfile/internal/handlers"
	"github.com/tickfile-dev/tickfile/internal/middleware"
	"github.com/tickfile-dev/tickfile/internal/store"
)

func NewRouter(s store.Store, bcryptCost int, logger *slog.Logger) *gin.Engine {
	r := gin.Default()

	// Any origin may call this API; the bearer token is the only gate.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		MaxAge:          12 * time.Hour,
	}))

	h := handlers.New(s, auth.NewManager(s, bcryptCost), logger)

	r.GET("/health", h.Health)
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)

	todos := r.Group("/todos", middleware.AuthMiddleware(s))
	{
		todos.GET("", h.ListTodos)
		todos.POST("", h.CreateTodo)
		todos.PATCH("/:id/toggle", h.ToggleTodo)
		todos.DELETE("/:id", h.DeleteTodo)
		todos.DELETE("", h.ClearTodos)
	}

	return r
}
