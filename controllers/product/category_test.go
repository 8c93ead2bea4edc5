package productcontroller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit-dev/storefront-api/apperr"
)

func TestCategoryDeletable(t *testing.T) {
	assert.NoError(t, categoryDeletable(0, 0))
}

func TestCategoryDeletableRejectsChildren(t *testing.T) {
	err := categoryDeletable(1, 0)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestCategoryDeletableRejectsProducts(t *testing.T) {
	err := categoryDeletable(0, 3)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
