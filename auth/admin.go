package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/storekit-dev/storefront-api/config"
	"github.com/storekit-dev/storefront-api/models"
	"github.com/storekit-dev/storefront-api/response"
)

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin verifies an approved admin account and issues a JWT for the
// admin route group.
func AdminLogin(db *gorm.DB, jwtCfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		var admin models.Admin
		err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&admin).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Unauthorized(c, "invalid email or password")
			return
		}
		if err != nil {
			response.Internal(c, "failed to look up admin")
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
			response.Unauthorized(c, "invalid email or password")
			return
		}
		if !admin.Approved {
			response.Unauthorized(c, "admin account awaiting approval")
			return
		}

		claims := jwt.MapClaims{
			"admin_id": admin.ID,
			"email":    admin.Email,
			"exp":      time.Now().Add(time.Duration(jwtCfg.ExpireHours) * time.Hour).Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(jwtCfg.Secret))
		if err != nil {
			response.Internal(c, "failed to sign token")
			return
		}

		response.OK(c, gin.H{"token": signed, "admin": admin})
	}
}
