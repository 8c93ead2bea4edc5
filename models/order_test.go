package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderComputeTotal(t *testing.T) {
	o := Order{
		Subtotal:       200,
		DiscountAmount: 20,
		ShippingCost:   30,
	}
	o.ComputeTotal()
	assert.InDelta(t, 210.0, o.TotalAmount, 1e-9)
}

func TestShippingCostFor(t *testing.T) {
	assert.InDelta(t, 0.0, ShippingCostFor(0, 3), 1e-9)

	// up to 1kg ships free
	assert.InDelta(t, 0.0, ShippingCostFor(0.5, 2), 1e-9)

	// each started 30kg bracket above the first kilogram costs 30
	assert.InDelta(t, 30.0, ShippingCostFor(2, 1), 1e-9)
	assert.InDelta(t, 30.0, ShippingCostFor(31, 1), 1e-9)
	assert.InDelta(t, 60.0, ShippingCostFor(32, 1), 1e-9)
}

func TestProductSyncInStock(t *testing.T) {
	p := Product{Stock: 3}
	p.SyncInStock()
	assert.True(t, p.InStock)

	p.Stock = 0
	p.SyncInStock()
	assert.False(t, p.InStock)
}

func TestAddressLocation(t *testing.T) {
	a := Address{Street: "12 Main St", City: "Galway", Country: "Ireland"}
	assert.Equal(t, "12 Main St, Galway, Ireland", a.Location())

	assert.Equal(t, "", Address{}.Location())
}
