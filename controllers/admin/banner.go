package adminController

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/storekit-dev/storefront-api/models"
	"github.com/storekit-dev/storefront-api/response"
)

type CreateBannerRequest struct {
	Image        string     `json:"image" binding:"required"` // filename only
	Link         string     `json:"link"`
	DurationDays int        `json:"duration_days"`
	StartDate    *time.Time `json:"start_date"`
}

type UpdateBannerRequest struct {
	Image        *string              `json:"image"`
	Link         *string              `json:"link"`
	DurationDays *int                 `json:"duration_days"`
	StartDate    *time.Time           `json:"start_date"`
	Status       *models.BannerStatus `json:"status"`
}

// CreateBanner saves a promotional banner. Status starts as pending or
// active from the date window, never expired.
func CreateBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateBannerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		if req.DurationDays < 1 {
			response.BadRequest(c, "duration_days must be at least 1")
			return
		}

		now := time.Now()
		start := now
		if req.StartDate != nil {
			start = *req.StartDate
		}

		banner := models.Banner{
			Image:        req.Image,
			Link:         req.Link,
			DurationDays: req.DurationDays,
			StartDate:    start,
		}
		banner.RecomputeEnd()
		banner.InitStatus(now)

		if err := db.Create(&banner).Error; err != nil {
			response.Internal(c, "failed to create banner")
			return
		}

		response.Created(c, banner)
	}
}

// GetBanners lists all banners.
func GetBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Order("created_at DESC").Find(&banners).Error; err != nil {
			response.Internal(c, "failed to fetch banners")
			return
		}
		response.List(c, banners, len(banners))
	}
}

// GetActiveBanners lists banners the storefront should display right
// now. Status is re-evaluated and persisted on the way out, so stale
// pending/active rows converge without a scheduler.
func GetActiveBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Find(&banners).Error; err != nil {
			response.Internal(c, "failed to fetch banners")
			return
		}

		now := time.Now()
		var active []models.Banner
		for i := range banners {
			if banners[i].RefreshStatus(now) {
				db.Model(&banners[i]).Update("status", banners[i].Status)
			}
			if banners[i].Status == models.BannerStatusActive {
				active = append(active, banners[i])
			}
		}

		response.List(c, active, len(active))
	}
}

// UpdateBanner patches a banner. The end date is recomputed from the
// patched start date and duration, falling back to the stored values
// for whichever the patch omits. Setting status to inactive is sticky:
// the auto transition skips inactive banners from then on.
func UpdateBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var banner models.Banner
		if err := db.First(&banner, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.NotFound(c, "Banner not found")
				return
			}
			response.Internal(c, "failed to fetch banner")
			return
		}

		var req UpdateBannerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		if req.Image != nil {
			banner.Image = *req.Image
		}
		if req.Link != nil {
			banner.Link = *req.Link
		}
		if req.StartDate != nil || req.DurationDays != nil {
			if req.StartDate != nil {
				banner.StartDate = *req.StartDate
			}
			if req.DurationDays != nil {
				if *req.DurationDays < 1 {
					response.BadRequest(c, "duration_days must be at least 1")
					return
				}
				banner.DurationDays = *req.DurationDays
			}
			banner.RecomputeEnd()
		}
		if req.Status != nil {
			switch *req.Status {
			case models.BannerStatusPending, models.BannerStatusActive,
				models.BannerStatusExpired, models.BannerStatusInactive:
				banner.Status = *req.Status
			default:
				response.BadRequest(c, "invalid banner status")
				return
			}
		}

		banner.RefreshStatus(time.Now())

		if err := db.Save(&banner).Error; err != nil {
			response.Internal(c, "failed to update banner")
			return
		}

		response.OK(c, banner)
	}
}

// DeleteBanner removes a banner record. The image file it references is
// managed outside this service.
func DeleteBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var banner models.Banner
		if err := db.First(&banner, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.NotFound(c, "Banner not found")
				return
			}
			response.Internal(c, "failed to fetch banner")
			return
		}

		if err := db.Delete(&banner).Error; err != nil {
			response.Internal(c, "failed to delete banner")
			return
		}

		response.Message(c, "Banner deleted")
	}
}
