package orderControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/storekit-dev/storefront-api/models"
)

func TestReleasesOnCancel(t *testing.T) {
	assert.True(t, releasesOnCancel(models.OrderStatusPending))
	assert.True(t, releasesOnCancel(models.OrderStatusInProgress))
	assert.True(t, releasesOnCancel(models.OrderStatusCompleted))

	// cancelling twice must not double-release
	assert.False(t, releasesOnCancel(models.OrderStatusCancelled))
}

func TestReleasesOnDelete(t *testing.T) {
	assert.True(t, releasesOnDelete(models.OrderStatusPending))
	assert.True(t, releasesOnDelete(models.OrderStatusInProgress))

	// stock already returned or consumed
	assert.False(t, releasesOnDelete(models.OrderStatusCancelled))
	assert.False(t, releasesOnDelete(models.OrderStatusCompleted))
}

func TestMapOrderStatus(t *testing.T) {
	s, err := mapOrderStatus("Cancelled")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, s)

	s, err = mapOrderStatus("in-progress")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusInProgress, s)

	_, err = mapOrderStatus("shipped")
	assert.Error(t, err)
}
