package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/storekit-dev/storefront-api/controllers/admin"
	couponcontroller "github.com/storekit-dev/storefront-api/controllers/coupon"
	orderControllers "github.com/storekit-dev/storefront-api/controllers/order"
	productcontroller "github.com/storekit-dev/storefront-api/controllers/product"
)

// SetupStorefrontRoutes registers the public catalog and checkout
// endpoints. No auth: guests can browse and order.
func SetupStorefrontRoutes(r *gin.Engine, deps Deps) {
	shop := r.Group("/shop")
	{
		shop.GET("/products", productcontroller.GetProducts(deps.DB))
		shop.GET("/products/:id", productcontroller.GetProductByID(deps.DB))
		shop.GET("/categories", productcontroller.GetAllCategories(deps.DB))
		shop.GET("/categories/tree", productcontroller.GetCategoryTree(deps.DB))
		shop.GET("/categories/:id", productcontroller.GetCategoryByID(deps.DB))
		shop.GET("/banners", adminController.GetActiveBanners(deps.DB))

		shop.POST("/coupons/validate", couponcontroller.ValidateCoupon(deps.DB))
		shop.POST("/orders", orderControllers.PlaceOrderHandler(deps.DB))
	}
}
