package productcontroller

import (
	"net/http"

	"github.com/AndyJai0908/ierg4210-project/config"
	"github.com/AndyJai0908/ierg4210-project/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteProduct removes the row, then best-effort removes its image
// files. Existing order items keep their snapshotted price and id.
func DeleteProduct(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, "pid = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		removeProductImages(cfg.UploadDir, product.Image, product.Thumbnail)

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
