package routes

import (
	"github.com/AndyJai0908/ierg4210-project/config"
	orderControllers "github.com/AndyJai0908/ierg4210-project/controllers/order"
	productcontroller "github.com/AndyJai0908/ierg4210-project/controllers/product"
	userControllers "github.com/AndyJai0908/ierg4210-project/controllers/user"
	"github.com/AndyJai0908/ierg4210-project/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Requires an
// admin token.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.ValidateAdmin(cfg.JWTSecret))
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db, cfg))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db, cfg))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db, cfg))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Orders & Users ───────────
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		adminGroup.GET("/orders/:orderID", orderControllers.GetOrderByIDHandler(db))
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
	}

	// websocket endpoint for real-time order status updates
	r.GET("/api/admin/ws/orders", orderControllers.OrderWebSocketHandler)
}
