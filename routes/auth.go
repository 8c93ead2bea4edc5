package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/storekit-dev/storefront-api/auth"
	"github.com/storekit-dev/storefront-api/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(deps.DB, deps.Sessions, deps.SessionTTL()))
		authGroup.POST("/login", auth.Login(deps.DB, deps.Sessions, deps.SessionTTL()))
		authGroup.POST("/logout",
			middleware.RequireSession(deps.Sessions),
			auth.Logout(deps.Sessions),
		)

		authGroup.POST("/admin-login", auth.AdminLogin(deps.DB, deps.Config.JWT))
	}
}
