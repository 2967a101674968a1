package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bookclubhq/bookclub/internal/database"
	"github.com/bookclubhq/bookclub/internal/services"
)

// RouterConfig carries every dependency the router needs.
type RouterConfig struct {
	Database       *database.Database
	Authors        *services.AuthorService
	Books          *services.BookService
	AllowedOrigins []string // empty = allow all (separate frontend origin)
	Version        string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	if len(cfg.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	router.Use(cors.New(corsCfg))

	health := NewHealthController(cfg.Database, cfg.Version)
	authorsController := NewAuthorsController(cfg.Authors)
	booksController := NewBooksController(cfg.Books)

	router.GET("/health", health.Status)

	router.GET("/authors", authorsController.List)
	router.POST("/authors", authorsController.Create)
	router.GET("/authors/:id", authorsController.Get)
	router.PATCH("/authors/:id", authorsController.Update)
	router.DELETE("/authors/:id", authorsController.Delete)

	router.GET("/books", booksController.List)
	router.POST("/books", booksController.Create)
	router.GET("/books/:id", booksController.Get)
	router.PATCH("/books/:id", booksController.Update)
	router.DELETE("/books/:id", booksController.Delete)

	return router
}
