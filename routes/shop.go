package routes

import (
	productcontroller "github.com/AndyJai0908/ierg4210-project/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupShopRoutes registers the public catalog endpoints the SPA
// browses without logging in.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		api.GET("/categories", productcontroller.GetAllCategories(db))
		api.GET("/categories/:catid/products", productcontroller.GetProductsByCategory(db))
		api.GET("/products", productcontroller.GetProducts(db))
		api.GET("/products/:pid", productcontroller.GetProductByID(db))
	}
}
