package productcontroller

import "github.com/storekit-dev/storefront-api/models"

// CategoryNode is one entry of the nested category forest.
type CategoryNode struct {
	models.Category
	Children []*CategoryNode `json:"children"`
}

// BuildCategoryTree turns a flat category list into a nested forest.
// First pass builds the id lookup, second pass hangs each node on its
// parent. Sibling order follows input order. A node whose parent is not
// in the supplied list becomes a root rather than an error.
func BuildCategoryTree(flat []models.Category) []*CategoryNode {
	byID := make(map[uint]*CategoryNode, len(flat))
	nodes := make([]*CategoryNode, 0, len(flat))
	for _, cat := range flat {
		node := &CategoryNode{Category: cat, Children: []*CategoryNode{}}
		byID[cat.ID] = node
		nodes = append(nodes, node)
	}

	var roots []*CategoryNode
	for _, node := range nodes {
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := byID[*node.ParentID]
		if !ok {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return roots
}
