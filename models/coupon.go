package models

import (
	"strings"
	"time"
)

type CouponStatus string

const (
	CouponStatusActive   CouponStatus = "active"
	CouponStatusInactive CouponStatus = "inactive"
	CouponStatusExpired  CouponStatus = "expired"
)

type Coupon struct {
	ID           uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Code         string       `gorm:"unique;not null" json:"code"`
	DiscountPct  float64      `gorm:"not null" json:"discount_pct"`
	StartDate    time.Time    `json:"start_date"`
	ValidityDays int          `gorm:"not null" json:"validity_days"`
	EndDate      time.Time    `json:"end_date"`
	Status       CouponStatus `gorm:"type:VARCHAR(20);default:'active'" json:"status"`
	UsageLimit   *int         `json:"usage_limit,omitempty"` // nil = unlimited
	UsedCount    int          `gorm:"default:0" json:"used_count"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// NormalizeCouponCode uppercases and trims a code so lookups are
// case-insensitive regardless of how the client typed it.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// RecomputeEnd refreshes EndDate from StartDate and ValidityDays.
// Must be called whenever either input changes.
func (cp *Coupon) RecomputeEnd() {
	cp.EndDate = ComputeWindowEnd(cp.StartDate, cp.ValidityDays)
}

// IsEligibleAt reports whether the coupon can be redeemed at now:
// inside [StartDate, EndDate] (boundaries inclusive), status active,
// and usage limit not yet reached.
func (cp *Coupon) IsEligibleAt(now time.Time) bool {
	if ClassifyWindow(now, cp.StartDate, cp.EndDate) != WindowActive {
		return false
	}
	if cp.Status != CouponStatusActive {
		return false
	}
	if cp.UsageLimit != nil && cp.UsedCount >= *cp.UsageLimit {
		return false
	}
	return true
}

// RecordUsage bumps the redemption counter. It does not re-check
// eligibility; redemption paths check and consume inside one transaction.
func (cp *Coupon) RecordUsage() {
	cp.UsedCount++
}

// ExpireIfPast flips an active coupon to expired once its window has
// closed. Returns true when the status changed. Never un-flips.
func (cp *Coupon) ExpireIfPast(now time.Time) bool {
	if cp.Status == CouponStatusActive && now.After(cp.EndDate) {
		cp.Status = CouponStatusExpired
		return true
	}
	return false
}

// DiscountOn returns the discount amount for a subtotal.
func (cp *Coupon) DiscountOn(subtotal float64) float64 {
	return subtotal * cp.DiscountPct / 100.0
}
