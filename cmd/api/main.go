package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/samikassu/crewboard/internal/handler/http"
	redisclient "github.com/samikassu/crewboard/internal/infrastructure/cache"
	"github.com/samikassu/crewboard/internal/infrastructure/config"
	database "github.com/samikassu/crewboard/internal/infrastructure/database"
	"github.com/samikassu/crewboard/internal/infrastructure/external_services"
	"github.com/samikassu/crewboard/internal/infrastructure/jwt"
	"github.com/samikassu/crewboard/internal/infrastructure/logger"
	"github.com/samikassu/crewboard/internal/infrastructure/repository/memory"
	"github.com/samikassu/crewboard/internal/infrastructure/repository/mongodb"
	"github.com/samikassu/crewboard/internal/infrastructure/store"
	"github.com/samikassu/crewboard/internal/infrastructure/uuidgen"
	"github.com/samikassu/crewboard/internal/infrastructure/validator"
	"github.com/samikassu/crewboard/internal/ledger"
	"github.com/samikassu/crewboard/internal/usecase"

	"github.com/samikassu/crewboard/internal/domain/contract"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Entity store: MongoDB when configured, in-process otherwise
	var entityStore contract.IEntityStore
	if mongoURI := os.Getenv("MONGODB_URI"); mongoURI != "" {
		dbName := os.Getenv("MONGODB_DB_NAME")
		if dbName == "" {
			log.Fatal("MONGODB_DB_NAME environment variable not set")
		}
		mongoClient, err := database.NewMongoDBClient(mongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer mongoClient.Disconnect()
		entityStore = mongodb.NewMongoEntityStore(mongoClient.Client.Database(dbName))
	} else {
		log.Println("MONGODB_URI not set, using in-memory entity store")
		entityStore = memory.NewMemoryEntityStore()
	}

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Services
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	tokenManager := jwt.NewSessionTokenManager(jwtSecret, 24*time.Hour)
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	appConfig := config.NewConfig()

	// Dependency Injection: Usecases
	engine := ledger.NewEngine(uuidGenerator, nil)
	sessionUsecase := usecase.NewSessionUsecase(entityStore, engine, tokenManager, appLogger, appConfig, appValidator, uuidGenerator)

	// Optional Dependency Injection: admin recruit notifications over SMTP
	smtpHost := os.Getenv("EMAIL_HOST")
	if smtpHost != "" && appConfig.GetAdminEmail() != "" {
		mailService := external_services.NewEmailService(
			smtpHost,
			os.Getenv("EMAIL_PORT"),
			os.Getenv("EMAIL_USERNAME"),
			os.Getenv("EMAIL_APP_PASSWORD"),
			os.Getenv("EMAIL_FROM"),
		)
		sessionUsecase.SetMailService(mailService)
	}

	// Optional Dependency Injection: Redis leaderboard cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		if rdb != nil {
			defer redisclient.Close(rdb)
			sessionUsecase.SetLeaderboardCache(store.NewLeaderboardCacheStore(rdb))
		}
	}

	// Optional Dependency Injection: mentor AI
	var aiUsecase *usecase.AIUseCase
	if apiKey := appConfig.GetAIServiceAPIKey(); apiKey != "" {
		aiService := external_services.NewGeminiAIService(apiKey)
		aiUsecase = usecase.NewAIUseCase(aiService)
	}

	// Seed the bootstrap admin so someone can approve the first recruits
	if err := sessionUsecase.EnsureAdmin(context.Background()); err != nil {
		log.Fatalf("Failed to ensure admin account: %v", err)
	}

	// Setup API routes
	var appRouter *handlerHttp.Router
	if aiUsecase != nil {
		appRouter = handlerHttp.NewRouter(sessionUsecase, aiUsecase, tokenManager)
	} else {
		appRouter = handlerHttp.NewRouter(sessionUsecase, nil, tokenManager)
	}
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
