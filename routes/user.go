package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/storekit-dev/storefront-api/controllers/order"
	userControllers "github.com/storekit-dev/storefront-api/controllers/user"
	"github.com/storekit-dev/storefront-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires a session.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireSession(deps.Sessions))
	{
		userGroup.GET("/", userControllers.GetUser(deps.DB))
		userGroup.PUT("/", userControllers.UpdateUser(deps.DB))

		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(deps.DB))
		userGroup.POST("/orders", orderControllers.PlaceOrderHandler(deps.DB))
	}
}
