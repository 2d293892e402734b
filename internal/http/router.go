package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mpetrov/bookshelf/internal/store"
)

// RouterConfig carries every dependency the router needs. A nil Auditor
// disables mutation receipts.
type RouterConfig struct {
	Session *store.Session
	Auditor MutationAuditor
	Version string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Session, cfg.Version)
	booksController := NewBooksController(cfg.Session, cfg.Auditor)
	readingController := NewReadingController(cfg.Session, cfg.Auditor)
	statsController := NewStatsController(cfg.Session)

	// Health endpoints
	router.GET("/health", health.GetStatus)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Books API endpoints
	router.GET("/api/books", booksController.GetAllBooks)
	router.POST("/api/books", booksController.CreateBook)
	router.GET("/api/books/search", booksController.SearchBooks)
	router.GET("/api/books/:index", booksController.GetBook)
	router.PUT("/api/books/:index", booksController.UpdateBook)
	router.DELETE("/api/books/:index", booksController.DeleteBook)
	router.GET("/api/books/:index/rankings", booksController.GetRankings)

	// Reading log endpoints
	router.GET("/api/reading", readingController.ListEntries)
	router.POST("/api/reading", readingController.AddEntry)

	// Statistics endpoints
	router.GET("/api/stats/general", statsController.GetGeneralStats)
	router.GET("/api/stats/weekdays", statsController.GetWeekdayAverages)
	router.GET("/api/stats/months", statsController.GetMonthlyCounts)
	router.GET("/api/stats/snapshot", statsController.GetSnapshot)

	return router
}
