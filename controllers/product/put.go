package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/AndyJai0908/ierg4210-project/config"
	"github.com/AndyJai0908/ierg4210-project/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateProduct edits a product in place. Only supplied fields change;
// a replacement image retires the old files after the new ones exist.
func UpdateProduct(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "pid = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("catid"); v != "" {
			catid, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid catid"})
				return
			}
			var category models.Category
			if err := db.First(&category, "catid = ?", catid).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
				return
			}
			product.CatID = uint(catid)
		}
		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil || price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			product.Price = price
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}

		if file, err := c.FormFile("image"); err == nil {
			mainImage, thumbnail, err := saveProductImages(cfg.UploadDir, product.Name, file, c.SaveUploadedFile)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			removeProductImages(cfg.UploadDir, product.Image, product.Thumbnail)
			product.Image = mainImage
			product.Thumbnail = thumbnail
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
	}
}
