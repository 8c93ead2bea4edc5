package orderControllers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storekit-dev/storefront-api/apperr"
	"github.com/storekit-dev/storefront-api/models"
	"github.com/storekit-dev/storefront-api/response"
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	ProductID        uint      `json:"product_id" binding:"required"`
	Quantity         int       `json:"quantity" binding:"required,gt=0"`
	CustomerName     string    `json:"customer_name" binding:"required"`
	CustomerEmail    string    `json:"customer_email"`
	CustomerLocation string    `json:"customer_location"`
	CouponCode       string    `json:"coupon_code"`
	DeliveryDate     time.Time `json:"delivery_date" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateDeliveryDateRequest struct {
	DeliveryDate time.Time `json:"delivery_date" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusInProgress):
		return models.OrderStatusInProgress, nil
	case string(models.OrderStatusCompleted):
		return models.OrderStatusCompleted, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func validateDeliveryDate(d time.Time) error {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return apperr.Validationf("delivery_date cannot be in the past")
	}
	return nil
}

// -------- Core Logic --------

// PlaceOrder reserves stock, redeems the coupon if one was supplied,
// snapshots the product and customer, and creates the order. Stock,
// coupon, and order writes share one transaction: either all land or
// none do.
func PlaceOrder(db *gorm.DB, req PlaceOrderRequest, userID *string) (*models.Order, error) {
	if err := validateDeliveryDate(req.DeliveryDate); err != nil {
		return nil, err
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		product, err := reserveStock(tx, req.ProductID, req.Quantity)
		if err != nil {
			return err
		}

		subtotal := product.SalePrice * float64(req.Quantity)
		discount := 0.0
		couponCode := ""

		if req.CouponCode != "" {
			code := models.NormalizeCouponCode(req.CouponCode)
			var coupon models.Coupon
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("code = ?", code).First(&coupon).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("coupon %s not found", code)
			}
			if err != nil {
				return apperr.Internal("failed to load coupon", err)
			}

			now := time.Now()
			coupon.ExpireIfPast(now)
			if !coupon.IsEligibleAt(now) {
				return apperr.Validationf("coupon %s is not eligible", code)
			}
			coupon.RecordUsage()
			if err := tx.Save(&coupon).Error; err != nil {
				return apperr.Internal("failed to record coupon usage", err)
			}

			discount = coupon.DiscountOn(subtotal)
			couponCode = code
		}

		order = models.Order{
			OrderRef:         generateOrderRef(),
			ProductID:        product.ID,
			UserID:           userID,
			CustomerName:     req.CustomerName,
			CustomerEmail:    req.CustomerEmail,
			CustomerLocation: req.CustomerLocation,
			ProductName:      product.Name,
			ProductImage:     product.Image,
			UnitPrice:        product.SalePrice,
			Quantity:         req.Quantity,
			Subtotal:         subtotal,
			DiscountAmount:   discount,
			ShippingCost:     models.ShippingCostFor(product.Weight, req.Quantity),
			CouponCode:       couponCode,
			DeliveryDate:     req.DeliveryDate,
			Status:           models.OrderStatusPending,
		}
		order.ComputeTotal()

		if err := tx.Create(&order).Error; err != nil {
			return apperr.Internal("failed to create order", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	broadcastOrderEvent("order.created", order)
	return &order, nil
}

// -------- Handlers --------

// PlaceOrderHandler creates an order. When a customer session is on the
// context, the order is linked to that user.
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		var userID *string
		if v, ok := c.Get("user_id"); ok {
			if id, ok := v.(string); ok && id != "" {
				userID = &id
			}
		}

		order, err := PlaceOrder(db, req, userID)
		if err != nil {
			response.FromError(c, err)
			return
		}
		response.Created(c, order)
	}
}

// GetAllOrdersHandler lists orders newest first, paginated.
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if limit < 1 || limit > 100 {
			limit = 20
		}

		query := db.Model(&models.Order{})
		if status := c.Query("status"); status != "" {
			mapped, err := mapOrderStatus(status)
			if err != nil {
				response.BadRequest(c, err.Error())
				return
			}
			query = query.Where("status = ?", mapped)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			response.Internal(c, "failed to count orders")
			return
		}

		var orders []models.Order
		if err := query.
			Preload("Product").
			Preload("User").
			Order("created_at DESC").
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&orders).Error; err != nil {
			response.Internal(c, "failed to fetch orders")
			return
		}

		response.Page(c, orders, len(orders), response.NewPagination(page, limit, total))
	}
}

// GetUserOrdersHandler lists the session user's orders.
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			response.Internal(c, "failed to fetch orders")
			return
		}
		response.List(c, orders, len(orders))
	}
}

// GetOrderByIDHandler fetches one order by numeric id or order_ref.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")

		var order models.Order
		if err := db.
			Preload("Product").
			Preload("User").
			Where("id::text = ? OR order_ref = ?", id, id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.NotFound(c, "Order not found")
				return
			}
			response.Internal(c, "failed to fetch order")
			return
		}

		response.OK(c, order)
	}
}

// UpdateOrderStatusHandler moves an order to a new status. A transition
// into cancelled returns the reserved stock, once: the prior-status
// check keeps a repeated cancel from double-releasing.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		var order models.Order
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&order, "id = ?", orderID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFoundf("order %s not found", orderID)
				}
				return apperr.Internal("failed to load order", err)
			}

			if newStatus == models.OrderStatusCancelled && releasesOnCancel(order.Status) {
				if err := releaseStock(tx, order.ProductID, order.Quantity); err != nil {
					return err
				}
			}

			order.Status = newStatus
			if err := tx.Save(&order).Error; err != nil {
				return apperr.Internal("failed to update order status", err)
			}
			return nil
		})
		if err != nil {
			response.FromError(c, err)
			return
		}

		broadcastOrderEvent("order.updated", order)
		response.OK(c, order)
	}
}

// UpdateDeliveryDateHandler reschedules delivery; the new date must not
// be in the past.
func UpdateDeliveryDateHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req UpdateDeliveryDateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		if err := validateDeliveryDate(req.DeliveryDate); err != nil {
			response.FromError(c, err)
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.NotFound(c, "Order not found")
				return
			}
			response.Internal(c, "failed to fetch order")
			return
		}

		if err := db.Model(&order).Update("delivery_date", req.DeliveryDate).Error; err != nil {
			response.Internal(c, "failed to update delivery date")
			return
		}

		order.DeliveryDate = req.DeliveryDate
		response.OK(c, order)
	}
}

// DeleteOrderHandler removes an order, returning its stock unless the
// order was already cancelled (stock came back then) or completed
// (stock was consumed).
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		err := db.Transaction(func(tx *gorm.DB) error {
			var order models.Order
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&order, "id = ?", orderID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFoundf("order %s not found", orderID)
				}
				return apperr.Internal("failed to load order", err)
			}

			if releasesOnDelete(order.Status) {
				if err := releaseStock(tx, order.ProductID, order.Quantity); err != nil {
					return err
				}
			}

			if err := tx.Delete(&order).Error; err != nil {
				return apperr.Internal("failed to delete order", err)
			}
			return nil
		})
		if err != nil {
			response.FromError(c, err)
			return
		}

		response.Message(c, "Order deleted")
	}
}
