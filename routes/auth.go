package routes

import (
	"github.com/AndyJai0908/ierg4210-project/config"
	orderControllers "github.com/AndyJai0908/ierg4210-project/controllers/order"
	userControllers "github.com/AndyJai0908/ierg4210-project/controllers/user"
	"github.com/AndyJai0908/ierg4210-project/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/api/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", userControllers.RegisterHandler(db))
		authGroup.POST("/login", userControllers.LoginHandler(db, cfg))
		authGroup.GET("/status", middleware.OptionalToken(cfg.JWTSecret), userControllers.StatusHandler())

		// Member portal: requires a valid token
		authGroup.POST("/change-password", middleware.ValidateToken(cfg.JWTSecret), userControllers.ChangePasswordHandler(db))
		authGroup.GET("/orders", middleware.ValidateToken(cfg.JWTSecret), orderControllers.GetMemberOrdersHandler(db))
	}
}
