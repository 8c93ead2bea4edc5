package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/storekit-dev/storefront-api/config"
	"github.com/storekit-dev/storefront-api/sessions"
)

// Deps carries everything the route groups need.
type Deps struct {
	DB       *gorm.DB
	Sessions sessions.Store
	Config   *config.Config
}

// SessionTTL is the lifetime handed to new customer sessions.
func (d Deps) SessionTTL() time.Duration {
	return time.Duration(d.Config.Session.TTLHours) * time.Hour
}

// Setup is the single entry point that wires up all route groups.
func Setup(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// Public storefront routes
	SetupStorefrontRoutes(r, deps)

	// Customer routes (session-protected)
	SetupUserRoutes(r, deps)

	// Admin routes (API-key + admin-token protected)
	SetupAdminRoutes(r, deps)
}
