package productcontroller

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/storekit-dev/storefront-api/models"
	"github.com/storekit-dev/storefront-api/response"
)

// ImportProductsFromExcel upserts products from an uploaded spreadsheet.
// Rows with an existing ID update that product; rows without one create.
// Malformed rows are skipped, not fatal.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			response.BadRequest(c, "Excel file is required")
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			response.Internal(c, "failed to open Excel file")
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			response.Internal(c, "failed to parse Excel file")
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			response.BadRequest(c, "Excel file is empty or missing header row")
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

			idStr := get(0)
			name := get(1)
			description := get(2)
			sku := strings.ToUpper(get(3))
			salePrice, err1 := strconv.ParseFloat(get(4), 64)
			regularPrice, _ := strconv.ParseFloat(get(5), 64)
			weight, _ := strconv.ParseFloat(get(6), 64)
			stock, _ := strconv.Atoi(get(7))
			image := get(8)
			categoryIDStr := get(9)

			if name == "" || sku == "" || err1 != nil {
				skippedCount++
				continue
			}

			var categories []models.Category
			for _, part := range strings.Split(categoryIDStr, ",") {
				if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
					categories = append(categories, models.Category{ID: uint(id)})
				}
			}

			product := models.Product{
				Name:         name,
				Description:  description,
				SKU:          sku,
				SalePrice:    salePrice,
				RegularPrice: regularPrice,
				Weight:       weight,
				Stock:        stock,
				Image:        image,
				Categories:   categories,
			}
			product.SyncInStock()

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Product
					if err := db.Preload("Categories").First(&existing, id).Error; err == nil {
						existing.Name = product.Name
						existing.Description = product.Description
						existing.SKU = product.SKU
						existing.SalePrice = product.SalePrice
						existing.RegularPrice = product.RegularPrice
						existing.Weight = product.Weight
						existing.Stock = product.Stock
						existing.Image = product.Image
						existing.SyncInStock()

						if err := db.Model(&existing).Association("Categories").Replace(categories); err != nil {
							skippedCount++
							continue
						}
						if err := db.Save(&existing).Error; err == nil {
							updatedCount++
							continue
						}
					}
				}
			}

			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		response.OK(c, gin.H{
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
