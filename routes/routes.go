package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"velomart-backend/controllers"
	"velomart-backend/middlewares"
)

// Setup configures and returns the Gin engine.
func Setup(ctrl *controllers.Controller, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	signIn := middlewares.RequireSignIn(ctrl.PasetoSecretKey)
	admin := middlewares.RequireAdmin(ctrl.Users)

	api := r.Group("/api/v1")
	{
		api.GET("/health", ctrl.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", ctrl.Register)
			auth.POST("/login", ctrl.Login)
			auth.POST("/forgot-password", ctrl.ForgotPassword)
			auth.PUT("/profile", signIn, ctrl.UpdateProfile)
			auth.GET("/user-auth", signIn, ctrl.UserAuth)
			auth.GET("/admin-auth", signIn, admin, ctrl.AdminAuth)
			auth.GET("/orders", signIn, ctrl.GetOrders)
			auth.GET("/all-orders", signIn, admin, ctrl.GetAllOrders)
			auth.PUT("/order-status/:orderId", signIn, admin, ctrl.OrderStatus)
		}

		category := api.Group("/category")
		{
			category.GET("/get-category", ctrl.GetCategories)
			category.GET("/single-category/:slug", ctrl.SingleCategory)
			category.POST("/create-category", signIn, admin, ctrl.CreateCategory)
			category.PUT("/update-category/:id", signIn, admin, ctrl.UpdateCategory)
			category.DELETE("/delete-category/:id", signIn, admin, ctrl.DeleteCategory)
		}

		product := api.Group("/product")
		{
			product.GET("/get-product", ctrl.GetProducts)
			product.GET("/get-product/:slug", ctrl.GetSingleProduct)
			product.GET("/product-photo/:id", ctrl.ProductPhoto)
			product.GET("/product-list/:page", ctrl.ProductList)
			product.GET("/product-count", ctrl.ProductCount)
			product.GET("/search/:keyword", ctrl.SearchProduct)
			product.GET("/related-product/:pid/:cid", ctrl.RelatedProduct)
			product.GET("/product-category/:slug", ctrl.ProductCategory)
			product.POST("/product-filters", ctrl.ProductFilters)
			product.POST("/create-product", signIn, admin, ctrl.CreateProduct)
			product.PUT("/update-product/:id", signIn, admin, ctrl.UpdateProduct)
			product.DELETE("/delete-product/:id", signIn, admin, ctrl.DeleteProduct)
			product.GET("/braintree/token", signIn, ctrl.BraintreeToken)
			product.POST("/braintree/payment", signIn, ctrl.BraintreePayment)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
