package routes

import (
	"homeclean/internal/adapter/http/handlers"
	"homeclean/internal/domain/entities"
	"homeclean/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth     = "/auth"
	PathUsers    = "/users"
	PathRequests = "/service-requests"
	PathQuotes   = "/quotes"
	PathOrders   = "/orders"
	PathBills    = "/bills"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authGroup := rg.Group(PathAuth)
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}
}

func addCleaningRoutes(rg *gin.RouterGroup, authUseCase usecase.IAuthUseCase,
	authHandler *handlers.AuthHandler, requestHandler *handlers.ServiceRequestHandler,
	quoteHandler *handlers.QuoteHandler, orderHandler *handlers.OrderHandler,
	billHandler *handlers.BillHandler) {

	authed := rg.Group("", handlers.AuthMiddleware(authUseCase))

	clientOnly := handlers.RequireRole(entities.RoleClient)
	contractorOnly := handlers.RequireRole(entities.RoleContractor)

	users := authed.Group(PathUsers)
	{
		users.GET("/profile", authHandler.Profile)
	}

	requests := authed.Group(PathRequests)
	{
		requests.POST("", clientOnly, requestHandler.Create)
		requests.GET("", requestHandler.List)
		requests.GET("/:id", requestHandler.Get)
		requests.POST("/:id/photos", clientOnly, requestHandler.UploadPhotos)
		requests.GET("/:id/quotes", quoteHandler.ListByRequest)
	}

	quotes := authed.Group(PathQuotes)
	{
		quotes.POST("", contractorOnly, quoteHandler.Create)
		quotes.GET("/:id", quoteHandler.Get)
		quotes.POST("/:id/responses", clientOnly, quoteHandler.Respond)
	}

	orders := authed.Group(PathOrders)
	{
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.Get)
		orders.PUT("/:id/complete", contractorOnly, orderHandler.Complete)
	}

	bills := authed.Group(PathBills)
	{
		bills.GET("", billHandler.List)
		bills.GET("/:id", billHandler.Get)
		bills.POST("/:id/responses", billHandler.Respond)
	}
}
