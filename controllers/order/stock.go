package orderControllers

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storekit-dev/storefront-api/apperr"
	"github.com/storekit-dev/storefront-api/models"
)

// reserveStock locks the product row and takes qty out of stock. The
// row lock makes the check-then-decrement atomic, so two concurrent
// orders cannot both pass the stock check.
func reserveStock(tx *gorm.DB, productID uint, qty int) (*models.Product, error) {
	var product models.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("product %d not found", productID)
	}
	if err != nil {
		return nil, apperr.Internal("failed to load product", err)
	}

	if err := product.Reserve(qty); err != nil {
		return nil, err
	}
	if err := tx.Save(&product).Error; err != nil {
		return nil, apperr.Internal("failed to update stock", err)
	}
	return &product, nil
}

// releaseStock returns qty to the product and marks it in stock. A
// product that no longer exists leaves nothing to restore.
func releaseStock(tx *gorm.DB, productID uint, qty int) error {
	var product models.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return apperr.Internal("failed to load product", err)
	}

	product.Release(qty)
	if err := tx.Save(&product).Error; err != nil {
		return apperr.Internal("failed to restore stock", err)
	}
	return nil
}

// releasesOnCancel reports whether cancelling from prev returns stock.
// The prior-status check is the only double-release guard.
func releasesOnCancel(prev models.OrderStatus) bool {
	return prev != models.OrderStatusCancelled
}

// releasesOnDelete reports whether deleting from prev returns stock.
// Cancelled orders already gave it back; completed orders consumed it.
func releasesOnDelete(prev models.OrderStatus) bool {
	return prev != models.OrderStatusCancelled && prev != models.OrderStatusCompleted
}
