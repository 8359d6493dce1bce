package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ctrl "fitfeed/internal/controller/http"
	"fitfeed/internal/repo/persistent"
	"fitfeed/internal/usecase"
	"fitfeed/pkg/config"
	"fitfeed/pkg/jwt"
	"fitfeed/pkg/logger"
	"fitfeed/pkg/middleware"
	"fitfeed/pkg/queue"
	"fitfeed/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Run wires repositories, usecases and handlers, starts the HTTP server and
// blocks until shutdown. queueClient, redisClient and s3Client may be nil;
// the corresponding features degrade instead of failing startup.
func Run(cfg *config.Config, log *logger.Logger, db *mongo.Database, redisClient *redis.Client, queueClient *queue.Client, s3Client *s3.Client) error {
	jwtService := jwt.NewService(cfg.JWTSecret)

	setupCtx, setupCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer setupCancel()

	// Initialize repositories
	postRepo, err := persistent.NewPostRepository(setupCtx, db)
	if err != nil {
		return err
	}
	userRepo, err := persistent.NewUserRepository(setupCtx, db)
	if err != nil {
		return err
	}
	bmiRepo := persistent.NewBMIRepository(db)
	waterRepo := persistent.NewWaterRepository(db)
	workoutRepo := persistent.NewWorkoutRepository(db)
	foodRepo := persistent.NewFoodRepository(db)

	// Initialize use cases
	postUseCase := usecase.NewPostUseCase(postRepo, queueClient, log)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService)
	bmiUseCase := usecase.NewBMIUseCase(bmiRepo, log)
	waterUseCase := usecase.NewWaterUseCase(waterRepo)
	workoutUseCase := usecase.NewWorkoutUseCase(workoutRepo)
	foodUseCase := usecase.NewFoodUseCase(foodRepo, redisClient, log)

	// Initialize HTTP handlers
	postHandler := ctrl.NewPostHandler(postUseCase, log)
	authHandler := ctrl.NewAuthHandler(authUseCase, log)
	bmiHandler := ctrl.NewBMIHandler(bmiUseCase, log)
	waterHandler := ctrl.NewWaterHandler(waterUseCase, log)
	workoutHandler := ctrl.NewWorkoutHandler(workoutUseCase, log)
	foodHandler := ctrl.NewFoodHandler(foodUseCase, log)
	mediaHandler := ctrl.NewMediaHandler(s3Client, log)

	// Setup router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	rateLimit := middleware.RateLimitMiddleware(redisClient, 100, time.Minute)

	// Feed
	r.GET("/posts", postHandler.ListPosts)
	r.POST("/posts", rateLimit, postHandler.CreatePost)
	r.POST("/posts/:id/like", rateLimit, postHandler.LikePost)
	r.POST("/posts/:id/comment", rateLimit, postHandler.CommentPost)
	r.POST("/media", rateLimit, mediaHandler.Upload)

	// Fitness
	r.POST("/bmi", bmiHandler.Evaluate)
	r.GET("/food-chart", foodHandler.Chart)
	r.POST("/water", waterHandler.AddIntake)
	r.GET("/water", waterHandler.Level)
	r.POST("/water/reset", waterHandler.Reset)
	r.POST("/workouts/start", workoutHandler.Start)
	r.POST("/workouts/end", workoutHandler.End)
	r.POST("/workouts/next", workoutHandler.Next)

	// Auth
	r.POST("/signup", authHandler.SignUp)
	r.POST("/signin", authHandler.SignIn)
	r.POST("/signout", authHandler.SignOut)
	r.GET("/me", middleware.AuthMiddleware(jwtService), authHandler.Me)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("fitfeed starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if queueClient != nil {
		queueClient.Close()
	}

	if err := db.Client().Disconnect(ctx); err != nil {
		log.Error("Error disconnecting MongoDB: %v", err)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("fitfeed exited")
	return nil
}
