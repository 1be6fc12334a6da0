package http

import (
	"github.com/edumart/edupay/internal/adapter/config"
	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	userHandler *UserHandler,
	orderHandler *OrderHandler,
	walletHandler *WalletHandler,
	callbackHandler *CallbackHandler) (*Router, error) {

	router := gin.New()
	h := &userHandler.Handler

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/register", userHandler.RegisterUser)
			user.POST("/login", userHandler.LoginUser)
		}

		cart := api.Group("/cart", authCheck(tokenService, h))
		{
			cart.GET("", orderHandler.GetCart)
		}

		orders := api.Group("/orders", authCheck(tokenService, h))
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("/:id/cancel", orderHandler.CancelOrder)
			orders.POST("/:id/refund", orderHandler.RefundOrder)
		}

		wallet := api.Group("/wallet", authCheck(tokenService, h))
		{
			wallet.GET("", walletHandler.GetWallet)
			wallet.POST("/deposit", walletHandler.Deposit)
			wallet.POST("/withdrawals", walletHandler.Withdraw)
			wallet.POST("/withdrawals/:id/cancel", walletHandler.CancelWithdrawal)
		}

		admin := api.Group("/admin", authCheck(tokenService, h), adminOnly(h))
		{
			admin.GET("/withdrawals", walletHandler.ListWithdrawals)
			admin.POST("/withdrawals/:id/approve", walletHandler.ResolveWithdrawal(true))
			admin.POST("/withdrawals/:id/reject", walletHandler.ResolveWithdrawal(false))
		}

		// Provider callbacks carry their own HMAC, no bearer token.
		callbacks := api.Group("/callbacks")
		{
			for method, gw := range callbackHandler.gateways {
				callbacks.POST("/"+providerPath(method), callbackHandler.Callback(gw))
				callbacks.GET("/"+providerPath(method), callbackHandler.Callback(gw))
			}
		}
	}

	return &Router{router}, nil
}

func providerPath(method domain.PaymentMethod) string {
	switch method {
	case domain.PaymentFastpay:
		return "fastpay"
	case domain.PaymentOvopay:
		return "ovopay"
	case domain.PaymentZentra:
		return "zentra"
	default:
		return string(method)
	}
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
