package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/storekit-dev/storefront-api/models"
	"github.com/storekit-dev/storefront-api/response"
	"github.com/storekit-dev/storefront-api/sessions"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type sessionPayload struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// lookupConflict classifies a uniqueness lookup: nil means the row
// exists, ErrRecordNotFound means the value is free, anything else is
// a lookup failure and says nothing about the value.
func lookupConflict(err error) (taken bool, failed bool) {
	if err == nil {
		return true, false
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, false
	}
	return false, true
}

// Register creates a customer account and opens a session for it.
func Register(db *gorm.DB, store sessions.Store, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		var existing models.User
		taken, failed := lookupConflict(db.Where("email = ?", email).First(&existing).Error)
		if failed {
			response.Internal(c, "failed to check email")
			return
		}
		if taken {
			response.BadRequest(c, "email already registered")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			response.Internal(c, "failed to hash password")
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Email:        email,
			PasswordHash: string(hash),
			Name:         req.Name,
			Phone:        req.Phone,
		}
		if err := db.Create(&user).Error; err != nil {
			response.Internal(c, "failed to create user")
			return
		}

		token, err := store.Create(c.Request.Context(), user.ID, ttl)
		if err != nil {
			response.Internal(c, "failed to create session")
			return
		}
		response.Created(c, sessionPayload{Token: token, User: user})
	}
}

// Login verifies credentials and returns a fresh session token.
func Login(db *gorm.DB, store sessions.Store, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		var user models.User
		err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Unauthorized(c, "invalid email or password")
			return
		}
		if err != nil {
			response.Internal(c, "failed to look up user")
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			response.Unauthorized(c, "invalid email or password")
			return
		}

		token, err := store.Create(c.Request.Context(), user.ID, ttl)
		if err != nil {
			response.Internal(c, "failed to create session")
			return
		}
		response.OK(c, sessionPayload{Token: token, User: user})
	}
}

// Logout destroys the caller's session. Runs behind RequireSession, so
// the token on the context is known valid.
func Logout(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetString("session_token")
		if err := store.Destroy(c.Request.Context(), token); err != nil {
			response.Internal(c, "failed to destroy session")
			return
		}
		response.Message(c, "Logged out")
	}
}
