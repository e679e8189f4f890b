package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/dampdigits/stockplay/internal/domain/port/core"
	sessionport "github.com/dampdigits/stockplay/internal/domain/port/session"
	"github.com/dampdigits/stockplay/internal/infrastructure/adapter/api/handler"
	"github.com/dampdigits/stockplay/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	ledgerHandler *handler.LedgerHandler,
	quoteHandler *handler.QuoteHandler,
	sessions sessionport.Store,
	cookieName string,
	logger coreport.Logger,
) {
	// Public routes
	router.GET("/register", authHandler.ShowRegister)
	router.POST("/register", authHandler.Register)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)

	// Routes requiring a logged-in session
	authenticated := router.Group("/")
	authenticated.Use(middleware.SessionAuth(sessions, cookieName, logger))
	{
		authenticated.GET("/", ledgerHandler.Index)
		authenticated.GET("/history", ledgerHandler.History)

		authenticated.GET("/quote", quoteHandler.ShowQuote)
		authenticated.POST("/quote", quoteHandler.Quote)

		authenticated.GET("/buy", ledgerHandler.ShowBuy)
		authenticated.POST("/buy", ledgerHandler.Buy)

		authenticated.GET("/sell", ledgerHandler.ShowSell)
		authenticated.POST("/sell", ledgerHandler.Sell)

		authenticated.GET("/addcash", ledgerHandler.ShowDeposit)
		authenticated.POST("/addcash", ledgerHandler.Deposit)

		authenticated.GET("/pswdchange", authHandler.ShowChangePassword)
		authenticated.POST("/pswdchange", authHandler.ChangePassword)

		authenticated.GET("/logout", authHandler.Logout)
	}
}

// SetupMiddlewares configures global middlewares for the application
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.NoCache())
}
