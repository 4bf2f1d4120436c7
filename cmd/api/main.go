package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"campus-quiz/internal/adapter"
	"campus-quiz/internal/cache"
	"campus-quiz/internal/config"
	"campus-quiz/internal/database"
	"campus-quiz/internal/handler"
	"campus-quiz/internal/logger"
	"campus-quiz/internal/middleware"
	"campus-quiz/internal/repository"
	"campus-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Initialize repositories
	attemptRepository := repository.NewSQLXQuizAttemptRepository(db)
	questionRepository := repository.NewSQLXQuestionRepository(db)
	userRepository := repository.NewSQLXUserRepository(db)

	// Initialize Redis-backed cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Initialize services
	quizService := service.NewQuizService(attemptRepository, questionRepository, userRepository, cacheAdapter, cfg)

	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	userService := service.NewUserService(userRepository)

	// Initialize handlers
	quizHandler := handler.NewQuizHandler(quizService)
	authHandler := handler.NewAuthHandler(authService, userService, cfg)
	userHandler := handler.NewUserHandler(userService)

	validationMw := middleware.NewValidationMiddleware()

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.FrontendURL,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		MaxAge:           300,
	}))
	app.Use(recover.New())

	apiGroup := app.Group("/api")

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", middleware.Protected(authService), authHandler.Me)
	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)

	// User routes (all protected)
	userGroup := apiGroup.Group("/user", middleware.Protected(authService))
	userGroup.Patch("/name", userHandler.UpdateName)
	userGroup.Patch("/password", userHandler.UpdatePassword)

	// Quiz routes
	quizGroup := apiGroup.Group("/quiz")
	quizGroup.Get("/questions/:track", validationMw.ValidateTrack(), quizHandler.GetQuestions)
	quizGroup.Post("/score", middleware.Protected(authService), quizHandler.SubmitScore)
	quizGroup.Get("/scores", middleware.Protected(authService), quizHandler.GetBestScores)
	quizGroup.Get("/history/:track", middleware.Protected(authService), validationMw.ValidateTrack(), quizHandler.GetHistory)
	quizGroup.Get("/leaderboard/:track", middleware.Protected(authService), validationMw.ValidateTrack(), quizHandler.GetLeaderboard)
	quizGroup.Get("/global-rank", middleware.Protected(authService), quizHandler.GetGlobalRank)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if err := redisClient.Close(); err != nil {
		appLogger.Warn("Failed to close Redis client", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		appLogger.Warn("Failed to close database", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
