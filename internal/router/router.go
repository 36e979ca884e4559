package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fitcall/backend/api/handler"
)

type Handlers struct {
	Auth      *apiHandler.AuthHandler
	Challenge *apiHandler.ChallengeHandler
	Stats     *apiHandler.StatsHandler
	Friends   *apiHandler.FriendsHandler
	Call      *apiHandler.CallHandler
	Goal      *apiHandler.GoalHandler
	Health    *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.POST("/api/v1/auth/refresh", handlers.Auth.Refresh)

	// Challenge workflow
	r.POST("/api/v1/challenges/send", authMiddleware(handlers.Challenge.Send))
	r.POST("/api/v1/challenges/respond", authMiddleware(handlers.Challenge.Respond))
	r.GET("/api/v1/challenges/received", authMiddleware(handlers.Challenge.Received))
	r.GET("/api/v1/challenges/notifications", authMiddleware(handlers.Challenge.Notifications))

	// Stats are readable without a session, matching the original surface.
	r.GET("/api/v1/stats/user", handlers.Stats.UserStats)
	r.GET("/api/v1/stats/comparison", handlers.Stats.ComparisonStats)
	r.GET("/api/v1/stats/global", authMiddleware(handlers.Stats.GlobalStats))

	r.GET("/api/v1/friends", authMiddleware(handlers.Friends.List))

	r.GET("/api/v1/calls", authMiddleware(handlers.Call.List))
	r.PUT("/api/v1/calls/{id}/status", authMiddleware(handlers.Call.UpdateStatus))

	r.GET("/api/v1/goals", authMiddleware(handlers.Goal.List))
	r.POST("/api/v1/goals", authMiddleware(handlers.Goal.Create))
	r.GET("/api/v1/goals/{id}", authMiddleware(handlers.Goal.Get))
	r.PUT("/api/v1/goals/{id}", authMiddleware(handlers.Goal.Update))
	r.DELETE("/api/v1/goals/{id}", authMiddleware(handlers.Goal.Delete))
	r.GET("/api/v1/goals/{id}/steps", authMiddleware(handlers.Goal.ListSteps))
	r.POST("/api/v1/steps", authMiddleware(handlers.Goal.CreateStep))
	r.PUT("/api/v1/steps/{id}", authMiddleware(handlers.Goal.UpdateStep))
	r.DELETE("/api/v1/steps/{id}", authMiddleware(handlers.Goal.DeleteStep))

	return r
}
