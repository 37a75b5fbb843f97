package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	svix "github.com/svix/svix-webhooks/go"

	"github.com/intervueapp/intervue/config"
	"github.com/intervueapp/intervue/internal/api/handlers"
	"github.com/intervueapp/intervue/internal/api/middleware"
	"github.com/intervueapp/intervue/internal/api/routes"
	"github.com/intervueapp/intervue/internal/cache"
	"github.com/intervueapp/intervue/internal/events"
	"github.com/intervueapp/intervue/internal/logger"
	mongorepo "github.com/intervueapp/intervue/internal/repositories/mongo"
	"github.com/intervueapp/intervue/internal/services"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()

	// Init MongoDB
	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}
	l.Info("MongoDB connected")

	// Init Redis
	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	l.Info("Redis connected")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	db := config.MongoDatabase()
	rdb := config.RedisClient

	userRepo := mongorepo.NewUserRepo(db)
	interviewRepo := mongorepo.NewInterviewRepo(db)
	commentRepo := mongorepo.NewCommentRepo(db)

	roleCache := cache.NewRedisCache(rdb)
	statusEvents := events.NewRedisPublisher(rdb)

	authSvc := services.NewAuthService(userRepo, jwtSecret)
	userSvc := services.NewUserService(userRepo, roleCache)
	interviewSvc := services.NewInterviewService(interviewRepo, statusEvents, l)
	commentSvc := services.NewCommentService(commentRepo)
	streamSvc := services.NewStreamService(os.Getenv("STREAM_API_KEY"), os.Getenv("STREAM_SECRET_KEY"))

	var wh *svix.Webhook
	if secret := os.Getenv("USER_WEBHOOK_SECRET"); secret != "" {
		var err error
		wh, err = svix.NewWebhook(secret)
		if err != nil {
			log.Fatalf("webhook secret error: %v", err)
		}
	} else {
		l.Warn("USER_WEBHOOK_SECRET not set; user webhook disabled")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		JWTSecret: jwtSecret,
		Auth:      handlers.NewAuthHandler(authSvc),
		User:      handlers.NewUserHandler(userSvc),
		Interview: handlers.NewInterviewHandler(interviewSvc),
		Comment:   handlers.NewCommentHandler(commentSvc),
		Meeting:   handlers.NewMeetingHandler(streamSvc),
		Webhook:   handlers.NewWebhookHandler(userSvc, wh, l),
		EventsWS:  handlers.NewEventsWSHandler(rdb),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
