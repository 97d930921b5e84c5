package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/acmeshop/itemsvc/docs"
	"github.com/acmeshop/itemsvc/internal/items"
	"github.com/acmeshop/itemsvc/internal/middleware"
	"github.com/acmeshop/itemsvc/internal/validation"
)

// Server represents the HTTP server
type Server struct {
	logger   *zap.Logger
	itemsHdl *items.Handler
}

// NewServer creates a new HTTP server
func NewServer(logger *zap.Logger) *Server {
	return &Server{
		logger:   logger,
		itemsHdl: items.NewHandler(logger),
	}
}

// Router creates a new HTTP router
func (s *Server) Router() *gin.Engine {
	if err := validation.Register(); err != nil {
		s.logger.Fatal("Failed to register validators", zap.Error(err))
	}

	router := gin.New()

	// Add middleware
	router.Use(ginzap.Ginzap(s.logger, "2006-01-02T15:04:05Z07:00", true))
	router.Use(ginzap.RecoveryWithZap(s.logger, true))
	router.Use(cors.Default())
	router.Use(middleware.Metrics())

	// Add health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Add observability and docs endpoints
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Add item routes
	router.POST("/items1/", s.itemsHdl.CreateItem)
	router.PUT("/items2/:item_id", s.itemsHdl.UpdateItem)
	router.PUT("/items3/:item_id", s.itemsHdl.UpdateItemWithQuery)
	router.GET("/items4", s.itemsHdl.ReadItems)

	return router
}

// Start runs the HTTP server on the given address
func (s *Server) Start(addr string) error {
	return s.Router().Run(addr)
}
