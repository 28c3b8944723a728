package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/AndyJai0908/ierg4210-project/config"
	"github.com/AndyJai0908/ierg4210-project/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateProduct adds a catalog entry. The image (when supplied) is
// processed and written to disk before the row, so the stored filenames
// always point at files that exist.
func CreateProduct(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		catidStr := c.PostForm("catid")
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		description := c.PostForm("description")

		if catidStr == "" || name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "catid, name and price are required"})
			return
		}

		catid, err := strconv.ParseUint(catidStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid catid"})
			return
		}
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		var category models.Category
		if err := db.First(&category, "catid = ?", catid).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
			return
		}

		var mainImage, thumbnail string
		if file, err := c.FormFile("image"); err == nil {
			mainImage, thumbnail, err = saveProductImages(cfg.UploadDir, name, file, c.SaveUploadedFile)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		product := models.Product{
			CatID:       uint(catid),
			Name:        name,
			Price:       price,
			Description: description,
			Image:       mainImage,
			Thumbnail:   thumbnail,
		}
		if err := db.Create(&product).Error; err != nil {
			removeProductImages(cfg.UploadDir, mainImage, thumbnail)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":        product.PID,
			"message":   "Product added successfully",
			"image":     mainImage,
			"thumbnail": thumbnail,
		})
	}
}
