package routes

import (
	"context"
	"log"

	_ "homeclean/docs" // This will be auto-generated
	"homeclean/internal/adapter/http/handlers"
	repository2 "homeclean/internal/adapter/persistence/repository"
	"homeclean/internal/config"
	"homeclean/internal/infrastructure/auth"
	"homeclean/internal/infrastructure/database"
	"homeclean/internal/infrastructure/storage"
	"homeclean/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run(cfg config.Config) {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded request photos are served straight from disk.
	router.Static("/uploads", cfg.UploadDir)

	getRoutes(cfg)

	err := router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err.Error())
	}
	if err := database.Migrate(pool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err.Error())
	}

	userRepo := repository2.NewUserPostgresRepository(pool)
	requestRepo := repository2.NewServiceRequestPostgresRepository(pool)
	quoteRepo := repository2.NewQuotePostgresRepository(pool)
	orderRepo := repository2.NewOrderPostgresRepository(pool)
	billRepo := repository2.NewBillPostgresRepository(pool)
	txManager := repository2.NewPostgresTxManager(pool)

	tokenService, err := auth.NewJWTTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		log.Fatalf("Failed to initialize token service: %v", err.Error())
	}
	cardEncryptor, err := auth.NewAESCardEncryptor(cfg.CardSecret)
	if err != nil {
		log.Fatalf("Failed to initialize card encryptor: %v", err.Error())
	}
	photoStorage, err := storage.NewLocalPhotoStorage(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize photo storage: %v", err.Error())
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, auth.NewBcryptHasher(), tokenService, cardEncryptor)
	requestUseCase := usecase.NewServiceRequestUseCase(requestRepo, photoStorage, txManager)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, requestRepo, orderRepo, txManager)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, billRepo, txManager)
	billUseCase := usecase.NewBillUseCase(billRepo, txManager)

	authHandler := handlers.NewAuthHandler(authUseCase)
	requestHandler := handlers.NewServiceRequestHandler(requestUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	billHandler := handlers.NewBillHandler(billUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)
	addCleaningRoutes(v1, authUseCase, authHandler, requestHandler, quoteHandler, orderHandler, billHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
