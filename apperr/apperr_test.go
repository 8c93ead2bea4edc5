package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validationf("bad field")))
	assert.Equal(t, KindNotFound, KindOf(NotFoundf("missing")))
	assert.Equal(t, KindInsufficientStock, KindOf(InsufficientStockf("only 2 left")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))

	// kind survives wrapping
	wrapped := fmt.Errorf("placing order: %w", NotFoundf("product 7 not found"))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "only 2 left", InsufficientStockf("only %d left", 2).Error())

	cause := errors.New("conn refused")
	err := Internal("failed to load product", cause)
	assert.Equal(t, "failed to load product: conn refused", err.Error())
	assert.ErrorIs(t, err, cause)
}
