package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/storekit-dev/storefront-api/apperr"
)

type Product struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Description  string         `json:"description,omitempty"`
	SKU          string         `gorm:"unique;not null" json:"sku"`
	SalePrice    float64        `gorm:"not null" json:"sale_price"`
	RegularPrice float64        `json:"regular_price,omitempty"`
	Image        string         `gorm:"not null" json:"image"`
	Weight       float64        `json:"weight"`
	Categories   []Category     `gorm:"many2many:product_categories;" json:"categories,omitempty"`
	Stock        int            `gorm:"default:0" json:"stock"`
	InStock      bool           `gorm:"default:false" json:"in_stock"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// SyncInStock aligns the InStock flag with the current stock level.
// Only called at the moments stock changes, not recomputed on reads.
func (p *Product) SyncInStock() {
	p.InStock = p.Stock > 0
}

// Reserve takes qty out of stock. A failed reservation leaves the
// product untouched. The InStock flag tracks the resulting level.
func (p *Product) Reserve(qty int) error {
	if p.Stock < qty {
		return apperr.InsufficientStockf("insufficient stock for product %s: %d left", p.Name, p.Stock)
	}
	p.Stock -= qty
	p.SyncInStock()
	return nil
}

// Release returns qty to stock and marks the product available
// unconditionally.
func (p *Product) Release(qty int) {
	p.Stock += qty
	p.InStock = true
}
