package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/storekit-dev/storefront-api/controllers/admin"
	couponcontroller "github.com/storekit-dev/storefront-api/controllers/coupon"
	orderControllers "github.com/storekit-dev/storefront-api/controllers/order"
	productcontroller "github.com/storekit-dev/storefront-api/controllers/product"
	userControllers "github.com/storekit-dev/storefront-api/controllers/user"
	"github.com/storekit-dev/storefront-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires both the
// static API key and an admin token.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAPIKey(deps.Config.AdminAPIKey))
	adminGroup.Use(middleware.RequireAdminToken(deps.Config.JWT.Secret))
	{
		// ─────────── Admin & Customer Management ───────────
		adminGroup.GET("/admins", adminController.GetAllAdmins(deps.DB))
		adminGroup.POST("/admins", adminController.RegisterAdmin(deps.DB))
		adminGroup.GET("/users", userControllers.GetAllUsers(deps.DB))
		adminGroup.DELETE("/users/:id", userControllers.DeleteUser(deps.DB))

		adminMgmt := adminGroup.Group("/admin-management")
		{
			adminMgmt.GET("/pending", adminController.ListPendingAdmins(deps.DB))
			adminMgmt.POST("/approve", adminController.ApproveAdmin(deps.DB))
			adminMgmt.POST("/reject", adminController.RejectAdmin(deps.DB))
		}

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(deps.DB))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(deps.DB))
			productAdmin.GET("", productcontroller.GetProducts(deps.DB))
			productAdmin.GET("/:id", productcontroller.GetProductByID(deps.DB))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(deps.DB))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(deps.DB))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(deps.DB))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(deps.DB))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(deps.DB))
			categoryAdmin.GET("", productcontroller.GetAllCategories(deps.DB))
			categoryAdmin.GET("/tree", productcontroller.GetCategoryTree(deps.DB))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(deps.DB))
		}

		// ─────────── Coupon Management ───────────
		couponAdmin := adminGroup.Group("/coupons")
		{
			couponAdmin.POST("", couponcontroller.CreateCoupon(deps.DB))
			couponAdmin.GET("", couponcontroller.GetAllCoupons(deps.DB))
			couponAdmin.GET("/:code", couponcontroller.GetCouponByCode(deps.DB))
			couponAdmin.PUT("/:code", couponcontroller.UpdateCoupon(deps.DB))
			couponAdmin.DELETE("/:code", couponcontroller.DeleteCoupon(deps.DB))
		}

		// ─────────── Banner Management ───────────
		bannerAdmin := adminGroup.Group("/banners")
		{
			bannerAdmin.POST("", adminController.CreateBanner(deps.DB))
			bannerAdmin.GET("", adminController.GetBanners(deps.DB))
			bannerAdmin.PUT("/:id", adminController.UpdateBanner(deps.DB))
			bannerAdmin.DELETE("/:id", adminController.DeleteBanner(deps.DB))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(deps.DB))
			orderAdmin.GET("/stats", orderControllers.GetOrderStatsHandler(deps.DB))
			orderAdmin.GET("/:orderID", orderControllers.GetOrderByIDHandler(deps.DB))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(deps.DB))
			orderAdmin.PUT("/:orderID/delivery-date", orderControllers.UpdateDeliveryDateHandler(deps.DB))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(deps.DB))
		}
	}

	// Live order feed keeps its own auth handshake out of band.
	r.GET("/admin/ws/orders", orderControllers.OrderWebSocketHandler)
}
