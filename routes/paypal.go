package routes

import (
	"github.com/AndyJai0908/ierg4210-project/config"
	paypalControllers "github.com/AndyJai0908/ierg4210-project/controllers/paypal"
	"github.com/AndyJai0908/ierg4210-project/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupPayPalRoutes registers checkout plus the provider's callback
// endpoints. The IPN and redirect routes are necessarily public; the
// IPN authenticates itself by receiver email instead.
func SetupPayPalRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	payment := r.Group("/api/paypal")
	{
		payment.POST("/create-order", middleware.OptionalToken(cfg.JWTSecret), paypalControllers.CreateOrderHandler(db, cfg))
		payment.POST("/ipn", paypalControllers.IPNHandler(db, cfg))
		payment.GET("/success", paypalControllers.SuccessHandler(db, cfg))
		payment.GET("/cancel", paypalControllers.CancelHandler(db, cfg))
	}
}
