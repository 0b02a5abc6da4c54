package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"study_planner/internal/config"
	"study_planner/internal/handler"
	"study_planner/internal/repository"
	"study_planner/internal/service"
	"study_planner/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	resetSecret := os.Getenv("RESET_TOKEN_SECRET")
	if resetSecret == "" {
		log.Fatalf("RESET_TOKEN_SECRET not set in environment")
	}
	resetTTLMinutesStr := os.Getenv("RESET_TOKEN_TTL_MINUTES")
	resetTTLMinutes, err := strconv.ParseInt(resetTTLMinutesStr, 10, 64)
	if err != nil || resetTTLMinutes <= 0 {
		log.Printf("Invalid RESET_TOKEN_TTL_MINUTES, defaulting to 15: %v", err)
		resetTTLMinutes = 15
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration & Seed ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}
	if err := config.SeedData(dbPool); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// --- Initialize Utilities ---
	tokenUtil := utils.NewResetTokenUtil(resetSecret, time.Duration(resetTTLMinutes)*time.Minute)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	scheduleRepo := repository.NewScheduleRepository(dbPool)
	taskRepo := repository.NewTaskRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, tokenUtil)
	scheduleService := service.NewScheduleService(scheduleRepo)
	taskService := service.NewTaskService(taskRepo)
	overviewService := service.NewOverviewService(taskRepo, scheduleRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	taskHandler := handler.NewTaskHandler(taskService)
	overviewHandler := handler.NewOverviewHandler(overviewService)

	// --- Setup Gin Router ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default()

	// Allow-all CORS for the browser frontend during development.
	// For production, configure specific origins, methods, headers.
	router.Use(cors.Default())

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup)
	scheduleHandler.RegisterScheduleRoutes(apiGroup)
	taskHandler.RegisterTaskRoutes(apiGroup)
	overviewHandler.RegisterOverviewRoutes(apiGroup)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(context.Background()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
