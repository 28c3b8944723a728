package routes

import (
	"github.com/AndyJai0908/ierg4210-project/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public shop,
// auth, admin and payment route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Public storefront (no middleware)
	SetupShopRoutes(r, db)

	// Registration / login / member portal
	SetupAuthRoutes(r, db, cfg)

	// Admin panel (admin JWT)
	SetupAdminRoutes(r, db, cfg)

	// PayPal checkout + notification callbacks
	SetupPayPalRoutes(r, db, cfg)

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
