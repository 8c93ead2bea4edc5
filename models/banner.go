package models

import "time"

type BannerStatus string

const (
	BannerStatusPending  BannerStatus = "pending"
	BannerStatusActive   BannerStatus = "active"
	BannerStatusExpired  BannerStatus = "expired"
	BannerStatusInactive BannerStatus = "inactive"
)

type Banner struct {
	ID           uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Image        string       `gorm:"not null" json:"image"`
	Link         string       `json:"link,omitempty"`
	DurationDays int          `gorm:"not null" json:"duration_days"`
	StartDate    time.Time    `json:"start_date"`
	EndDate      time.Time    `json:"end_date"`
	Status       BannerStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// RecomputeEnd refreshes EndDate from StartDate and DurationDays.
func (b *Banner) RecomputeEnd() {
	b.EndDate = ComputeWindowEnd(b.StartDate, b.DurationDays)
}

// InitStatus sets the status for a freshly created banner. A banner is
// never born expired: anything past its start is simply active.
func (b *Banner) InitStatus(now time.Time) {
	if ClassifyWindow(now, b.StartDate, b.EndDate) == WindowPending {
		b.Status = BannerStatusPending
	} else {
		b.Status = BannerStatusActive
	}
}

// RefreshStatus re-evaluates the status from the date window. Called
// before every persistence write. An admin-set inactive status is
// sticky and never auto-transitioned. Returns true when the status
// changed.
func (b *Banner) RefreshStatus(now time.Time) bool {
	if b.Status == BannerStatusInactive {
		return false
	}
	next := BannerStatus(ClassifyWindow(now, b.StartDate, b.EndDate))
	if next == b.Status {
		return false
	}
	b.Status = next
	return true
}
