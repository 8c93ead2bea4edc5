package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testBanner() Banner {
	b := Banner{
		Image:        "spring_sale.png",
		DurationDays: 7,
		StartDate:    date(2024, time.April, 10),
	}
	b.RecomputeEnd()
	return b
}

func TestBannerRecomputeEnd(t *testing.T) {
	b := testBanner()
	assert.Equal(t, date(2024, time.April, 17), b.EndDate)
}

func TestBannerInitStatus(t *testing.T) {
	b := testBanner()

	b.InitStatus(date(2024, time.April, 5))
	assert.Equal(t, BannerStatusPending, b.Status)

	b.InitStatus(date(2024, time.April, 12))
	assert.Equal(t, BannerStatusActive, b.Status)

	// never born expired, even past the window
	b.InitStatus(date(2024, time.April, 25))
	assert.Equal(t, BannerStatusActive, b.Status)
}

func TestBannerRefreshStatus(t *testing.T) {
	b := testBanner()
	b.Status = BannerStatusPending

	// start = now-1d, end = now+1d classifies as active
	now := date(2024, time.April, 11)
	assert.True(t, b.RefreshStatus(now))
	assert.Equal(t, BannerStatusActive, b.Status)

	// no change while still inside the window
	assert.False(t, b.RefreshStatus(now))

	// past the end: expired
	assert.True(t, b.RefreshStatus(date(2024, time.April, 18)))
	assert.Equal(t, BannerStatusExpired, b.Status)
}

func TestBannerInactiveIsSticky(t *testing.T) {
	b := testBanner()
	b.Status = BannerStatusInactive

	assert.False(t, b.RefreshStatus(date(2024, time.April, 12)))
	assert.Equal(t, BannerStatusInactive, b.Status)

	assert.False(t, b.RefreshStatus(date(2024, time.April, 25)))
	assert.Equal(t, BannerStatusInactive, b.Status)
}
