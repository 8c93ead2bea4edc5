package adminController

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/storekit-dev/storefront-api/models"
	"github.com/storekit-dev/storefront-api/response"
)

type RegisterAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// GetAllAdmins lists every admin account.
func GetAllAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.Admin
		if err := db.Find(&admins).Error; err != nil {
			response.Internal(c, "failed to fetch admins")
			return
		}
		response.List(c, admins, len(admins))
	}
}

// RegisterAdmin creates an admin account in the unapproved state. An
// existing approved admin must approve it before it can log in.
func RegisterAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterAdminRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		var existing models.Admin
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			response.BadRequest(c, "an admin with this email already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			response.Internal(c, "failed to check email")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			response.Internal(c, "failed to hash password")
			return
		}

		admin := models.Admin{
			Email:        email,
			Name:         req.Name,
			PasswordHash: string(hash),
			Approved:     false,
		}
		if err := db.Create(&admin).Error; err != nil {
			response.Internal(c, "failed to create admin")
			return
		}

		response.Created(c, admin)
	}
}
