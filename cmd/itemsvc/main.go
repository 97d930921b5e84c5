package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/acmeshop/itemsvc/internal/config"
	"github.com/acmeshop/itemsvc/internal/server"
	"github.com/acmeshop/itemsvc/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg := config.LoadConfig()

	// Create logger
	zapLogger, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	gin.SetMode(cfg.GinMode)

	// Create API server
	apiServer := server.NewServer(zapLogger)

	// Start server in a goroutine
	go func() {
		zapLogger.Info("Starting API server", zap.String("addr", cfg.Addr))
		if err := apiServer.Start(cfg.Addr); err != nil {
			zapLogger.Fatal("Failed to start API server", zap.Error(err))
		}
	}()

	// Wait for interrupt to shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Server exited properly")
}
