package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/AndyJai0908/ierg4210-project/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ImportProductsFromExcel bulk-creates or updates catalog rows from an
// uploaded sheet: PID (blank for new), CatID, Name, Price, Description.
// Image columns are deliberately absent; images only enter through the
// upload path.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			pidStr := get(0)
			catid, err1 := strconv.ParseUint(get(1), 10, 64)
			name := get(2)
			price, err2 := strconv.ParseFloat(get(3), 64)
			description := get(4)

			if name == "" || err1 != nil || err2 != nil || price < 0 {
				skippedCount++
				continue
			}

			var category models.Category
			if err := db.First(&category, "catid = ?", catid).Error; err != nil {
				skippedCount++
				continue
			}

			if pidStr != "" {
				pid, err := strconv.Atoi(pidStr)
				if err != nil {
					skippedCount++
					continue
				}
				var existing models.Product
				if err := db.First(&existing, "pid = ?", pid).Error; err != nil {
					skippedCount++
					continue
				}
				existing.CatID = uint(catid)
				existing.Name = name
				existing.Price = price
				existing.Description = description
				if err := db.Save(&existing).Error; err != nil {
					skippedCount++
					continue
				}
				updatedCount++
				continue
			}

			product := models.Product{
				CatID:       uint(catid),
				Name:        name,
				Price:       price,
				Description: description,
			}
			if err := db.Create(&product).Error; err != nil {
				skippedCount++
				continue
			}
			createdCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}

// ExportProductsToExcel streams the catalog as a spreadsheet download.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"PID", "CatID", "Name", "Price", "Description", "Image", "Thumbnail"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.PID)
			row.AddCell().SetValue(p.CatID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(p.Thumbnail)
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
