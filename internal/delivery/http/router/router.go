// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"buytrek/internal/delivery/http/middleware"
	"buytrek/internal/delivery/http/router/handler"
	"buytrek/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AddressHandler *handler.AddressHandler
	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	WebhookHandler *handler.WebhookHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.params.AuthMiddleware.Authenticate
	staffOnly := r.params.AuthMiddleware.RequireRoles(entity.RoleStaff, entity.RoleAdmin)
	buyerOnly := r.params.AuthMiddleware.RequireRoles(entity.RoleBuyer)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account lifecycle
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/activate", r.params.UserHandler.ActivateAccount)
		authGroup.POST("/resend-otp", r.params.UserHandler.ResendOTP)
		authGroup.POST("/login", r.params.UserHandler.Login)
		authGroup.POST("/logout", r.params.UserHandler.Logout, authenticate)
		authGroup.POST("/password-reset", r.params.UserHandler.InitiatePasswordReset)
		authGroup.POST("/password-reset/complete", r.params.UserHandler.CompletePasswordReset)
	}

	userGroup := e.Group("/user", authenticate)
	{
		userGroup.POST("/profile", r.params.UserHandler.CreateProfile)
	}

	// Address book
	addressGroup := e.Group("/address", authenticate)
	{
		addressGroup.POST("", r.params.AddressHandler.CreateAddress)
		addressGroup.GET("", r.params.AddressHandler.ListAddresses)
		addressGroup.PUT("", r.params.AddressHandler.UpdateAddress)
		addressGroup.PATCH("/:addressId/default", r.params.AddressHandler.SetDefaultAddress)
		addressGroup.DELETE("/:addressId", r.params.AddressHandler.DeleteAddress)
	}

	// Catalog: browsing is public, mutation is for sellers and admins.
	productGroup := e.Group("/product")
	{
		productGroup.GET("", r.params.ProductHandler.ListProducts)
		productGroup.GET("/:productId", r.params.ProductHandler.GetProduct)
		productGroup.POST("", r.params.ProductHandler.CreateProduct, authenticate)
		productGroup.PATCH("", r.params.ProductHandler.UpdateProduct, authenticate)
	}

	// Cart
	cartGroup := e.Group("/cart", authenticate)
	{
		cartGroup.GET("", r.params.CartHandler.GetCart)
		cartGroup.POST("/:productId", r.params.CartHandler.AddToCart)
		cartGroup.PATCH("/:productId/increase", r.params.CartHandler.IncreaseQuantity)
		cartGroup.PATCH("/:productId/decrease", r.params.CartHandler.DecreaseQuantity)
		cartGroup.DELETE("/:productId", r.params.CartHandler.RemoveFromCart)
	}

	// Orders and fulfillment
	orderGroup := e.Group("/order", authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.InitiateOrder, buyerOnly)
		orderGroup.GET("", r.params.OrderHandler.GetUserOrders)
		orderGroup.GET("/all", r.params.OrderHandler.GetOrders, staffOnly)
		orderGroup.GET("/new", r.params.OrderHandler.GetNewOrders, staffOnly)
		orderGroup.GET("/seller/transactions", r.params.OrderHandler.GetSellerTransactions)
		orderGroup.GET("/:orderId", r.params.OrderHandler.GetOrder)
		orderGroup.PATCH("/:orderId/cancel", r.params.OrderHandler.CancelOrder)
		orderGroup.PATCH("/:orderId/packaging", r.params.OrderHandler.UpdateToPackaging, staffOnly)
		orderGroup.PATCH("/:orderId/packaged", r.params.OrderHandler.UpdateToPackaged, staffOnly)
		orderGroup.PATCH("/:orderId/out-for-delivery", r.params.OrderHandler.UpdateToOutForDelivery, staffOnly)
		orderGroup.PATCH("/:orderId/delivered", r.params.OrderHandler.UpdateToDelivered, staffOnly)
	}

	// Gateway callback: authenticated by source IP and HMAC signature, not JWT.
	e.POST("/payment/webhook", r.params.WebhookHandler.HandlePaystack)
}
