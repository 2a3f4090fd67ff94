package routes

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/achraf-fouad/aura-scents/controllers"
	"github.com/achraf-fouad/aura-scents/middleware"
)

// RegisterRoutes wires the storefront and admin surfaces. The /admin
// group is expected to sit behind an authenticating gateway.
func RegisterRoutes(
	r *gin.Engine,
	productController *controllers.ProductController,
	cartController *controllers.CartController,
	orderController *controllers.OrderController,
) {
	products := r.Group("/products")
	products.GET("", productController.GetProducts)
	products.GET("/best-sellers", productController.GetBestSellers)
	products.GET("/new-arrivals", productController.GetNewArrivals)
	products.GET("/:id", productController.GetProduct)

	cart := r.Group("/cart")
	cart.Use(middleware.CartSession())
	cart.GET("", cartController.GetCart)
	cart.POST("/items", cartController.AddItem)
	cart.PATCH("/items/:productId", cartController.UpdateItem)
	cart.DELETE("/items/:productId", cartController.RemoveItem)
	cart.DELETE("", cartController.ClearCart)

	checkout := r.Group("/checkout")
	checkout.Use(middleware.CartSession(), middleware.RateLimit(rate.Limit(1), 5))
	checkout.POST("", orderController.Checkout)

	admin := r.Group("/admin")
	admin.GET("/orders", orderController.GetOrders)
	admin.GET("/orders/:id", orderController.GetOrder)
	admin.PATCH("/orders/:id/status", orderController.UpdateStatus)
	admin.DELETE("/orders/:id", orderController.DeleteOrder)
	admin.POST("/products", productController.CreateProduct)
	admin.PUT("/products/:id", productController.UpdateProduct)
	admin.DELETE("/products/:id", productController.DeleteProduct)
	admin.POST("/products/images", productController.UploadImages)
}
