package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/intervueapp/intervue/internal/api/handlers"
	"github.com/intervueapp/intervue/internal/api/middleware"
)

type Deps struct {
	JWTSecret string

	Auth      *handlers.AuthHandler
	User      *handlers.UserHandler
	Interview *handlers.InterviewHandler
	Comment   *handlers.CommentHandler
	Meeting   *handlers.MeetingHandler
	Webhook   *handlers.WebhookHandler
	EventsWS  *handlers.EventsWSHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Public
	r.POST("/auth/signup", d.Auth.SignUp)
	r.POST("/auth/signin", d.Auth.SignIn)
	r.POST("/webhook/users", d.Webhook.HandleUserEvent)

	// Protected routes (JWT)
	auth := r.Group("/")
	auth.Use(middleware.JWTAuth(d.JWTSecret))

	auth.GET("/users", d.User.List)
	auth.GET("/users/byId", d.User.ByID)
	auth.POST("/users/sync", d.User.Sync)
	auth.GET("/users/me/role", d.User.MyRole)

	auth.GET("/interviews", d.Interview.List)
	auth.GET("/interviews/mine", d.Interview.Mine)
	auth.GET("/interviews/grouped", d.Interview.Grouped)
	auth.GET("/interviews/stream", d.Interview.ByStreamCall)
	auth.POST("/interviews", middleware.RequireInterviewer(), d.Interview.Create)
	auth.PATCH("/interviews/status", middleware.RequireInterviewer(), d.Interview.UpdateStatus)

	auth.GET("/comments", d.Comment.ListByInterview)
	auth.POST("/comments", middleware.RequireInterviewer(), d.Comment.Create)

	auth.GET("/meetings/token", d.Meeting.Token)

	// WebSocket
	auth.GET("/ws/interviews", d.EventsWS.InterviewEvents)
}
