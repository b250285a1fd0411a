package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/samikassu/crewboard/internal/handler/http/middleware"
	"github.com/samikassu/crewboard/internal/usecase"
	usecasecontract "github.com/samikassu/crewboard/internal/usecase/contract"
)

type Router struct {
	authHandler     *AuthHandler
	userHandler     *UserHandler
	taskHandler     *TaskHandler
	questionHandler *QuestionHandler
	aiHandler       *AIHandler
	tokenService    usecase.TokenService
}

func NewRouter(sessionUsecase usecasecontract.ISessionUseCase, aiUsecase usecasecontract.IAIUseCase, tokenService usecase.TokenService) *Router {
	r := &Router{
		authHandler:     NewAuthHandler(sessionUsecase),
		userHandler:     NewUserHandler(sessionUsecase),
		taskHandler:     NewTaskHandler(sessionUsecase),
		questionHandler: NewQuestionHandler(sessionUsecase),
		tokenService:    tokenService,
	}
	if aiUsecase != nil {
		r.aiHandler = NewAIHandler(aiUsecase)
	}
	return r
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", r.authHandler.Login)
		auth.GET("/session", r.authHandler.Resolve)
	}
	v1.GET("/leaderboard", r.userHandler.Leaderboard)

	// Protected routes (session token required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.tokenService))
	{
		// Session routes
		protected.GET("/me", r.authHandler.Me)
		protected.POST("/auth/cancel", r.authHandler.CancelPending)
		protected.POST("/logout", r.authHandler.Logout)

		// User routes
		protected.GET("/users", r.userHandler.ListUsers)
		protected.GET("/users/pending", r.userHandler.ListPendingUsers)
		protected.POST("/users/:id/approve", r.userHandler.ApproveUser)
		protected.POST("/users/:id/reject", r.userHandler.RejectUser)
		protected.PUT("/me/profile", r.userHandler.UpdateProfile)

		// Task routes
		protected.GET("/tasks", r.taskHandler.ListTasks)
		protected.POST("/tasks", r.taskHandler.CreateTask)
		protected.POST("/tasks/:taskID/claim", r.taskHandler.ClaimTask)

		// Council question routes
		protected.GET("/questions", r.questionHandler.ListQuestions)
		protected.POST("/questions", r.questionHandler.PostQuestion)
		protected.POST("/questions/:questionID/vote", r.questionHandler.VoteQuestion)
		protected.POST("/questions/:questionID/solutions", r.questionHandler.AddSolution)
		protected.POST("/questions/:questionID/solutions/:solutionID/vote", r.questionHandler.VoteSolution)
		protected.POST("/questions/:questionID/solutions/:solutionID/best", r.questionHandler.MarkBestAnswer)

		// Mentor AI routes (only when an API key is configured)
		if r.aiHandler != nil {
			protected.POST("/ai/chat", r.aiHandler.HandleChat)
			protected.POST("/ai/image", r.aiHandler.HandleGenerateImage)
		}
	}
}
