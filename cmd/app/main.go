package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"fitfeed/internal/app"
	"fitfeed/pkg/config"
	"fitfeed/pkg/logger"
	"fitfeed/pkg/queue"
	"fitfeed/pkg/s3"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg := logger.New()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	logg.Info("Connected to MongoDB at %s", cfg.MongoURI)

	db := mongoClient.Database(cfg.MongoDB)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logg.Warn("Redis unavailable, rate limiting and caching disabled: %v", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, logg)
	if err != nil {
		logg.Warn("RabbitMQ unavailable, activity events disabled: %v", err)
		queueClient = nil
	}

	var s3Client *s3.Client
	if cfg.AWSAccessKeyID != "" {
		s3Client, err = s3.NewClient(cfg)
		if err != nil {
			logg.Warn("S3 unavailable, media uploads disabled: %v", err)
			s3Client = nil
		}
	} else {
		logg.Warn("AWS credentials not set, media uploads disabled")
	}

	if err := app.Run(cfg, logg, db, redisClient, queueClient, s3Client); err != nil {
		log.Fatalf("fitfeed failed: %v", err)
	}
}
