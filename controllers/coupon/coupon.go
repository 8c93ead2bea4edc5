package couponcontroller

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/storekit-dev/storefront-api/apperr"
	"github.com/storekit-dev/storefront-api/models"
	"github.com/storekit-dev/storefront-api/response"
)

type CreateCouponRequest struct {
	Code         string     `json:"code" binding:"required"`
	DiscountPct  float64    `json:"discount_pct"`
	StartDate    *time.Time `json:"start_date"`
	ValidityDays int        `json:"validity_days"`
	UsageLimit   *int       `json:"usage_limit"`
}

type UpdateCouponRequest struct {
	DiscountPct  *float64             `json:"discount_pct"`
	StartDate    *time.Time           `json:"start_date"`
	ValidityDays *int                 `json:"validity_days"`
	UsageLimit   *int                 `json:"usage_limit"`
	Status       *models.CouponStatus `json:"status"`
}

func validateCouponBounds(discountPct float64, validityDays int, usageLimit *int) error {
	if discountPct < 0 || discountPct > 100 {
		return apperr.Validationf("discount_pct must be between 0 and 100")
	}
	if validityDays < 1 {
		return apperr.Validationf("validity_days must be at least 1")
	}
	if usageLimit != nil && *usageLimit < 0 {
		return apperr.Validationf("usage_limit cannot be negative")
	}
	return nil
}

// CreateCoupon registers a new discount code. The code is uppercased so
// uniqueness is case-insensitive; start date defaults to now.
func CreateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		if err := validateCouponBounds(req.DiscountPct, req.ValidityDays, req.UsageLimit); err != nil {
			response.FromError(c, err)
			return
		}

		code := models.NormalizeCouponCode(req.Code)
		if code == "" {
			response.BadRequest(c, "code is required")
			return
		}

		var existing models.Coupon
		if err := db.Where("code = ?", code).First(&existing).Error; err == nil {
			response.BadRequest(c, "a coupon with this code already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			response.Internal(c, "failed to check coupon code")
			return
		}

		start := time.Now()
		if req.StartDate != nil {
			start = *req.StartDate
		}

		coupon := models.Coupon{
			Code:         code,
			DiscountPct:  req.DiscountPct,
			StartDate:    start,
			ValidityDays: req.ValidityDays,
			Status:       models.CouponStatusActive,
			UsageLimit:   req.UsageLimit,
		}
		coupon.RecomputeEnd()

		if err := db.Create(&coupon).Error; err != nil {
			response.Internal(c, "failed to create coupon")
			return
		}

		response.Created(c, coupon)
	}
}

// GetAllCoupons lists coupons, lazily flipping any whose window has
// closed to expired before returning them.
func GetAllCoupons(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupons []models.Coupon
		if err := db.Order("created_at DESC").Find(&coupons).Error; err != nil {
			response.Internal(c, "failed to fetch coupons")
			return
		}

		now := time.Now()
		for i := range coupons {
			if coupons[i].ExpireIfPast(now) {
				db.Model(&coupons[i]).Update("status", coupons[i].Status)
			}
		}

		response.List(c, coupons, len(coupons))
	}
}

// GetCouponByCode returns one coupon, applying the same lazy expiry.
func GetCouponByCode(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := models.NormalizeCouponCode(c.Param("code"))

		var coupon models.Coupon
		if err := db.Where("code = ?", code).First(&coupon).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.NotFound(c, "Coupon not found")
				return
			}
			response.Internal(c, "failed to fetch coupon")
			return
		}

		if coupon.ExpireIfPast(time.Now()) {
			db.Model(&coupon).Update("status", coupon.Status)
		}

		response.OK(c, coupon)
	}
}

// UpdateCoupon patches a coupon; changing the start date or validity
// recomputes the end date, and bounds are re-validated on the merged
// result.
func UpdateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := models.NormalizeCouponCode(c.Param("code"))

		var coupon models.Coupon
		if err := db.Where("code = ?", code).First(&coupon).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.NotFound(c, "Coupon not found")
				return
			}
			response.Internal(c, "failed to fetch coupon")
			return
		}

		var req UpdateCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		if req.DiscountPct != nil {
			coupon.DiscountPct = *req.DiscountPct
		}
		if req.UsageLimit != nil {
			coupon.UsageLimit = req.UsageLimit
		}
		if req.Status != nil {
			switch *req.Status {
			case models.CouponStatusActive, models.CouponStatusInactive, models.CouponStatusExpired:
				coupon.Status = *req.Status
			default:
				response.BadRequest(c, "invalid coupon status")
				return
			}
		}

		recompute := false
		if req.StartDate != nil {
			coupon.StartDate = *req.StartDate
			recompute = true
		}
		if req.ValidityDays != nil {
			coupon.ValidityDays = *req.ValidityDays
			recompute = true
		}
		if recompute {
			coupon.RecomputeEnd()
		}

		if err := validateCouponBounds(coupon.DiscountPct, coupon.ValidityDays, coupon.UsageLimit); err != nil {
			response.FromError(c, err)
			return
		}

		if err := db.Save(&coupon).Error; err != nil {
			response.Internal(c, "failed to update coupon")
			return
		}

		response.OK(c, coupon)
	}
}

// DeleteCoupon removes a coupon outright.
func DeleteCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := models.NormalizeCouponCode(c.Param("code"))

		result := db.Where("code = ?", code).Delete(&models.Coupon{})
		if result.Error != nil {
			response.Internal(c, "failed to delete coupon")
			return
		}
		if result.RowsAffected == 0 {
			response.NotFound(c, "Coupon not found")
			return
		}

		response.Message(c, "Coupon deleted")
	}
}

type ValidateCouponRequest struct {
	Code     string  `json:"code" binding:"required"`
	Subtotal float64 `json:"subtotal"`
}

// ValidateCoupon is the storefront's pre-checkout eligibility check. It
// previews the discount without consuming a use; redemption happens
// inside the order transaction.
func ValidateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ValidateCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		var coupon models.Coupon
		err := db.Where("code = ?", models.NormalizeCouponCode(req.Code)).First(&coupon).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Coupon not found")
			return
		}
		if err != nil {
			response.Internal(c, "failed to fetch coupon")
			return
		}

		now := time.Now()
		if coupon.ExpireIfPast(now) {
			db.Model(&coupon).Update("status", coupon.Status)
		}

		if !coupon.IsEligibleAt(now) {
			response.BadRequest(c, "coupon is not eligible")
			return
		}

		response.OK(c, gin.H{
			"code":            coupon.Code,
			"discount_pct":    coupon.DiscountPct,
			"discount_amount": coupon.DiscountOn(req.Subtotal),
		})
	}
}
