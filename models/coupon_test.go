package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func activeCoupon() Coupon {
	cp := Coupon{
		Code:         "SUMMER10",
		DiscountPct:  10,
		StartDate:    date(2024, time.June, 1),
		ValidityDays: 30,
		Status:       CouponStatusActive,
	}
	cp.RecomputeEnd()
	return cp
}

func TestNormalizeCouponCode(t *testing.T) {
	assert.Equal(t, "SUMMER10", NormalizeCouponCode("  summer10 "))
	assert.Equal(t, "SUMMER10", NormalizeCouponCode("Summer10"))
}

func TestCouponRecomputeEnd(t *testing.T) {
	cp := activeCoupon()
	assert.Equal(t, date(2024, time.July, 1), cp.EndDate)

	cp.StartDate = date(2024, time.January, 31)
	cp.ValidityDays = 1
	cp.RecomputeEnd()
	assert.Equal(t, date(2024, time.February, 1), cp.EndDate)
}

func TestCouponEligibilityWindow(t *testing.T) {
	cp := activeCoupon()

	assert.False(t, cp.IsEligibleAt(date(2024, time.May, 31)))
	assert.True(t, cp.IsEligibleAt(date(2024, time.June, 15)))
	assert.False(t, cp.IsEligibleAt(date(2024, time.July, 2)))

	// exact boundary instants count as eligible
	assert.True(t, cp.IsEligibleAt(cp.StartDate))
	assert.True(t, cp.IsEligibleAt(cp.EndDate))
}

func TestCouponEligibilityStatus(t *testing.T) {
	now := date(2024, time.June, 15)

	cp := activeCoupon()
	cp.Status = CouponStatusInactive
	assert.False(t, cp.IsEligibleAt(now))

	cp.Status = CouponStatusExpired
	assert.False(t, cp.IsEligibleAt(now))
}

func TestCouponUsageLimit(t *testing.T) {
	now := date(2024, time.June, 15)
	limit := 5

	cp := activeCoupon()
	cp.UsageLimit = &limit

	cp.UsedCount = limit - 1
	assert.True(t, cp.IsEligibleAt(now))

	cp.UsedCount = limit
	assert.False(t, cp.IsEligibleAt(now))

	// nil limit means unlimited
	cp.UsageLimit = nil
	cp.UsedCount = 1_000_000
	assert.True(t, cp.IsEligibleAt(now))
}

func TestCouponRecordUsage(t *testing.T) {
	cp := activeCoupon()
	cp.RecordUsage()
	cp.RecordUsage()
	assert.Equal(t, 2, cp.UsedCount)
}

func TestCouponExpireIfPast(t *testing.T) {
	cp := activeCoupon()

	assert.False(t, cp.ExpireIfPast(date(2024, time.June, 15)))
	assert.Equal(t, CouponStatusActive, cp.Status)

	assert.True(t, cp.ExpireIfPast(date(2024, time.July, 2)))
	assert.Equal(t, CouponStatusExpired, cp.Status)

	// already expired: no further change reported
	assert.False(t, cp.ExpireIfPast(date(2024, time.July, 3)))

	// an admin-set inactive coupon is left alone
	cp = activeCoupon()
	cp.Status = CouponStatusInactive
	assert.False(t, cp.ExpireIfPast(date(2024, time.July, 2)))
	assert.Equal(t, CouponStatusInactive, cp.Status)
}

func TestCouponDiscountOn(t *testing.T) {
	cp := activeCoupon()
	assert.InDelta(t, 20.0, cp.DiscountOn(200), 1e-9)

	cp.DiscountPct = 0
	assert.InDelta(t, 0.0, cp.DiscountOn(200), 1e-9)

	cp.DiscountPct = 100
	assert.InDelta(t, 200.0, cp.DiscountOn(200), 1e-9)
}
