package dto

import "wallet-service/internal/models"

type CategoryResponse struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	ParentID *string            `json:"parentId,omitempty"`
	Children []CategoryResponse `json:"children,omitempty"`
}

// ToCategoryTreeResponse converts root nodes and their children
func ToCategoryTreeResponse(nodes []models.CategoryNode) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(nodes))
	for _, node := range nodes {
		root := CategoryResponse{
			ID:       node.ID,
			Name:     node.Name,
			ParentID: node.ParentID,
			Children: make([]CategoryResponse, 0, len(node.Children)),
		}
		for _, child := range node.Children {
			root.Children = append(root.Children, CategoryResponse{
				ID:       child.ID,
				Name:     child.Name,
				ParentID: child.ParentID,
			})
		}
		out = append(out, root)
	}
	return out
}
