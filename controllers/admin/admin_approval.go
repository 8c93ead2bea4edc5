package adminController

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/storekit-dev/storefront-api/models"
	"github.com/storekit-dev/storefront-api/response"
)

// ListPendingAdmins returns all admins awaiting approval.
func ListPendingAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pending []models.Admin
		if err := db.Where("approved = ?", false).Find(&pending).Error; err != nil {
			response.Internal(c, "failed to fetch pending admins")
			return
		}
		response.List(c, pending, len(pending))
	}
}

func ApproveAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request")
			return
		}

		var admin models.Admin
		if err := db.Where("email = ?", req.Email).First(&admin).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.NotFound(c, "Admin not found")
				return
			}
			response.Internal(c, "failed to fetch admin")
			return
		}

		if err := db.Model(&admin).Update("approved", true).Error; err != nil {
			response.Internal(c, "failed to approve admin")
			return
		}

		response.Message(c, "Admin approved")
	}
}

func RejectAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request")
			return
		}

		if err := db.Where("email = ?", req.Email).Delete(&models.Admin{}).Error; err != nil {
			response.Internal(c, "failed to reject admin")
			return
		}

		response.Message(c, "Admin rejected")
	}
}
