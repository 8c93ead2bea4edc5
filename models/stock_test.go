package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit-dev/storefront-api/apperr"
)

func TestReserveSequentialOrders(t *testing.T) {
	p := Product{Name: "Kettle", Stock: 5, InStock: true}

	require.NoError(t, p.Reserve(3))
	assert.Equal(t, 2, p.Stock)
	assert.True(t, p.InStock)

	err := p.Reserve(3)
	require.Error(t, err)
	assert.Equal(t, apperr.KindInsufficientStock, apperr.KindOf(err))
	assert.Equal(t, 2, p.Stock, "failed reservation must not touch stock")
	assert.True(t, p.InStock)
}

func TestReserveExactStockClearsInStock(t *testing.T) {
	p := Product{Name: "Kettle", Stock: 4, InStock: true}

	require.NoError(t, p.Reserve(4))
	assert.Equal(t, 0, p.Stock)
	assert.False(t, p.InStock)
}

func TestReleaseRestoresCancelledQuantity(t *testing.T) {
	p := Product{Name: "Kettle", Stock: 1, InStock: true}

	p.Release(4)
	assert.Equal(t, 5, p.Stock)
	assert.True(t, p.InStock)
}

func TestReleaseMarksSoldOutProductAvailable(t *testing.T) {
	p := Product{Name: "Kettle", Stock: 0, InStock: false}

	p.Release(2)
	assert.Equal(t, 2, p.Stock)
	assert.True(t, p.InStock)
}
