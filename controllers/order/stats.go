package orderControllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/storekit-dev/storefront-api/models"
	"github.com/storekit-dev/storefront-api/response"
)

type UserOrderStats struct {
	UserID     string  `json:"user_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	OrderCount int64   `json:"order_count"`
	TotalSpent float64 `json:"total_spent"`
}

type StatsSummary struct {
	TotalOrders     int64            `json:"total_orders"`
	CancelledOrders int64            `json:"cancelled_orders"`
	Revenue         float64          `json:"revenue"`
	Users           []UserOrderStats `json:"users"`
}

// GetOrderStatsHandler joins customers against their orders: per-user
// order count and spend plus an overall revenue summary. Cancelled
// orders are excluded from spend and revenue.
func GetOrderStatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var summary StatsSummary

		if err := db.Model(&models.Order{}).Count(&summary.TotalOrders).Error; err != nil {
			response.Internal(c, "failed to count orders")
			return
		}
		if err := db.Model(&models.Order{}).
			Where("status = ?", models.OrderStatusCancelled).
			Count(&summary.CancelledOrders).Error; err != nil {
			response.Internal(c, "failed to count cancelled orders")
			return
		}

		if err := db.Model(&models.Order{}).
			Where("status <> ?", models.OrderStatusCancelled).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&summary.Revenue).Error; err != nil {
			response.Internal(c, "failed to sum revenue")
			return
		}

		if err := db.Table("users u").
			Select(`u.id AS user_id, u.name, u.email,
				COUNT(o.id) AS order_count,
				COALESCE(SUM(o.total_amount) FILTER (WHERE o.status <> 'cancelled'), 0) AS total_spent`).
			Joins("LEFT JOIN orders o ON o.user_id = u.id").
			Group("u.id, u.name, u.email").
			Order("total_spent DESC").
			Scan(&summary.Users).Error; err != nil {
			response.Internal(c, "failed to aggregate user stats")
			return
		}

		response.OK(c, summary)
	}
}
