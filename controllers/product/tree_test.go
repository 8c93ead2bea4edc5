package productcontroller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit-dev/storefront-api/models"
)

func cat(id uint, parent *uint, name string) models.Category {
	return models.Category{ID: id, ParentID: parent, Name: name}
}

func ptr(v uint) *uint { return &v }

func TestBuildCategoryTree(t *testing.T) {
	flat := []models.Category{
		cat(1, nil, "Electronics"),
		cat(2, ptr(1), "Phones"),
		cat(3, ptr(1), "Laptops"),
		cat(4, ptr(2), "Android"),
	}

	forest := BuildCategoryTree(flat)
	require.Len(t, forest, 1)

	root := forest[0]
	assert.Equal(t, uint(1), root.ID)
	require.Len(t, root.Children, 2)
	assert.Equal(t, uint(2), root.Children[0].ID)
	assert.Equal(t, uint(3), root.Children[1].ID)
	require.Len(t, root.Children[0].Children, 1)
	assert.Equal(t, uint(4), root.Children[0].Children[0].ID)
}

func TestBuildCategoryTreeDanglingParentBecomesRoot(t *testing.T) {
	flat := []models.Category{
		cat(1, nil, "Electronics"),
		cat(2, ptr(1), "Phones"),
		cat(3, ptr(99), "Orphans"),
	}

	forest := BuildCategoryTree(flat)
	require.Len(t, forest, 2)
	assert.Equal(t, uint(1), forest[0].ID)
	assert.Equal(t, uint(3), forest[1].ID)

	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, uint(2), forest[0].Children[0].ID)
	assert.Empty(t, forest[1].Children)
}

func TestBuildCategoryTreeEmpty(t *testing.T) {
	assert.Empty(t, BuildCategoryTree(nil))
}

func TestBuildCategoryTreePreservesInputOrder(t *testing.T) {
	flat := []models.Category{
		cat(5, nil, "B"),
		cat(1, nil, "A"),
		cat(7, ptr(5), "B2"),
		cat(6, ptr(5), "B1"),
	}

	forest := BuildCategoryTree(flat)
	require.Len(t, forest, 2)
	assert.Equal(t, uint(5), forest[0].ID)
	assert.Equal(t, uint(1), forest[1].ID)

	require.Len(t, forest[0].Children, 2)
	assert.Equal(t, uint(7), forest[0].Children[0].ID)
	assert.Equal(t, uint(6), forest[0].Children[1].ID)
}
