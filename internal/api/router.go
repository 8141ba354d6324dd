package api

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"zenvy-storefront/config"
	"zenvy-storefront/internal/middleware"
	"zenvy-storefront/internal/session"
	"zenvy-storefront/internal/store"
)

// SetupRouter builds the gateway's routing surface
func SetupRouter(cfg *config.Config, manager *session.Manager, registry *store.Registry) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Log requests slow enough to indicate a stuck commerce API call
	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if duration := time.Since(start); duration > 5*time.Second {
			log.Printf("SLOW REQUEST: %s %s took %v", c.Request.Method, c.Request.URL.Path, duration)
		}
	})

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else if cfg.AllowAllOrigins && cfg.Environment != "production" {
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.SecurityMiddleware(&middleware.SecurityConfig{
		MaxRequestSize:    10 * 1024 * 1024,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   time.Duration(cfg.RateLimitWindow) * time.Second,
		RequireHTTPS:      cfg.Environment == "production",
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "ZENVY",
			"tagline": "Asset Requisition",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "zenvy-storefront",
		})
	})

	secureCookies := cfg.Environment == "production"

	apiGroup := router.Group("/api")
	apiGroup.Use(middleware.Sessions(manager, registry, secureCookies))
	{
		auth := apiGroup.Group("/auth")
		auth.Use(middleware.AuthRateLimitMiddleware())
		{
			auth.POST("/login", Login)
			auth.POST("/signup", Signup)
			auth.POST("/verify-otp", VerifyOTP)
			auth.POST("/resend-otp", ResendOTP)
			auth.POST("/forgot-password", ForgotPassword)
			auth.POST("/reset-password", ResetPassword)
			auth.POST("/logout", Logout)
		}

		apiGroup.GET("/session", GetSession)

		// Catalog browsing works without an account
		apiGroup.GET("/products", GetProducts)
		apiGroup.GET("/products/:id", GetProduct)
		apiGroup.GET("/products/:id/reviews", GetProductReviews)

		// The support assistant is available to every session
		chatGroup := apiGroup.Group("/chat")
		{
			chatGroup.GET("", GetChatHistory)
			chatGroup.POST("", SendChatMessage)
			chatGroup.DELETE("", ClearChat)
			chatGroup.GET("/ws", ChatWebSocket)
		}

		protected := apiGroup.Group("")
		protected.Use(middleware.RequireAuth())
		{
			protected.GET("/cart", GetCart)
			protected.POST("/cart/items", AddCartItem)
			protected.PUT("/cart/items/:productId", UpdateCartItem)
			protected.DELETE("/cart/items/:productId", RemoveCartItem)

			protected.GET("/wishlist", GetWishlist)
			protected.POST("/wishlist/:productId", AddWishlistItem)
			protected.DELETE("/wishlist/:productId", RemoveWishlistItem)

			protected.GET("/orders/active", GetActiveOrders)
			protected.GET("/orders/history", GetOrderHistory)
			protected.GET("/orders/:id", GetOrder)
			protected.POST("/orders/:id/cancel", CancelOrder)

			protected.POST("/checkout", BeginCheckout)
			protected.POST("/checkout/verify", VerifyCheckout)
			protected.POST("/checkout/dismiss", DismissCheckout)
			protected.POST("/checkout/failed", FailCheckout)
			protected.GET("/checkout", GetCheckoutState)

			protected.GET("/profile", GetProfile)
			protected.PUT("/profile", UpdateProfile)
			protected.POST("/profile/photo", UploadProfilePhoto)

			protected.GET("/notifications", GetNotifications)
			protected.PUT("/notifications/:id/read", MarkNotificationRead)
			protected.PUT("/notifications/read-all", MarkAllNotificationsRead)

			protected.POST("/products/:id/reviews", AddReview)
			protected.PUT("/reviews/:reviewId", UpdateReview)
			protected.DELETE("/reviews/:reviewId", DeleteReview)
		}

		admin := apiGroup.Group("/admin")
		admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
		{
			admin.GET("/products", AdminGetInventory)
			admin.POST("/products", AdminCreateProduct)
			admin.PUT("/products/:id", AdminUpdateProduct)
			admin.DELETE("/products/:id", AdminDeleteProduct)

			admin.GET("/orders", AdminGetOrders)
			admin.GET("/orders/:id", AdminGetOrder)
			admin.PATCH("/orders/:id/status", AdminUpdateOrderStatus)
			admin.DELETE("/orders/:id", AdminDeleteOrder)
		}
	}

	// Unknown API paths answer 404; anything else lands on the storefront
	// home the way the SPA router does.
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Not found",
			})
			return
		}
		c.Redirect(http.StatusTemporaryRedirect, "/")
	})

	return router
}
