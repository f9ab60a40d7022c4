package models

import (
	"errors"
	"regexp"
	"time"
)

// Top-level wallet categories. Sub-categories reference one of these as parent.
const (
	CategoryFood          = "food"
	CategoryTransport     = "transport"
	CategoryHousing       = "housing"
	CategoryEntertainment = "entertainment"
	CategoryHealth        = "health"
	CategoryShopping      = "shopping"
	CategorySalary        = "salary"
	CategoryOther         = "other"
)

var (
	ErrInvalidCategoryID   = errors.New("category id must be a lowercase slug")
	ErrCategoryNameMissing = errors.New("category name is required")
	ErrCategorySelfParent  = errors.New("category cannot be its own parent")

	categoryIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,49}$`)
)

// Category is a wallet category. Categories form a two-level tree through ParentID.
type Category struct {
	ID        string    `gorm:"type:varchar(50);primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	ParentID  *string   `gorm:"type:varchar(50);index" json:"parent_id,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if !IsValidCategoryID(c.ID) {
		return ErrInvalidCategoryID
	}
	if c.Name == "" {
		return ErrCategoryNameMissing
	}
	if c.ParentID != nil {
		if *c.ParentID == c.ID {
			return ErrCategorySelfParent
		}
		if !IsValidCategoryID(*c.ParentID) {
			return ErrInvalidCategoryID
		}
	}
	return nil
}

// IsRoot reports whether the category has no parent
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// IsValidCategoryID checks if a category identifier is a well-formed slug
func IsValidCategoryID(id string) bool {
	return categoryIDPattern.MatchString(id)
}

// DefaultCategories returns the category tree seeded on first start
func DefaultCategories() []Category {
	child := func(id, name, parent string) Category {
		p := parent
		return Category{ID: id, Name: name, ParentID: &p}
	}

	return []Category{
		{ID: CategoryFood, Name: "Food"},
		child("groceries", "Groceries", CategoryFood),
		child("dining", "Dining out", CategoryFood),
		{ID: CategoryTransport, Name: "Transport"},
		child("fuel", "Fuel", CategoryTransport),
		child("taxi", "Taxi", CategoryTransport),
		child("public_transport", "Public transport", CategoryTransport),
		{ID: CategoryHousing, Name: "Housing"},
		child("rent", "Rent", CategoryHousing),
		child("utilities", "Utilities", CategoryHousing),
		{ID: CategoryEntertainment, Name: "Entertainment"},
		child("streaming", "Streaming", CategoryEntertainment),
		{ID: CategoryHealth, Name: "Health"},
		child("pharmacy", "Pharmacy", CategoryHealth),
		{ID: CategoryShopping, Name: "Shopping"},
		child("clothing", "Clothing", CategoryShopping),
		child("electronics", "Electronics", CategoryShopping),
		{ID: CategorySalary, Name: "Salary"},
		{ID: CategoryOther, Name: "Other"},
	}
}

// LeafCategoryIDs returns the ids of default categories that have no children
func LeafCategoryIDs() []string {
	categories := DefaultCategories()
	parents := make(map[string]bool)
	for _, c := range categories {
		if c.ParentID != nil {
			parents[*c.ParentID] = true
		}
	}

	var leaves []string
	for _, c := range categories {
		if !parents[c.ID] {
			leaves = append(leaves, c.ID)
		}
	}
	return leaves
}

// CategoryNode is a category with its direct children
type CategoryNode struct {
	Category
	Children []Category `json:"children"`
}

// BuildCategoryTree groups categories under their parents. Children whose parent
// is missing are promoted to roots. Input order is preserved.
func BuildCategoryTree(categories []Category) []CategoryNode {
	present := make(map[string]bool, len(categories))
	for _, c := range categories {
		present[c.ID] = true
	}

	index := make(map[string]int)
	nodes := make([]CategoryNode, 0)
	for _, c := range categories {
		if c.IsRoot() || !present[*c.ParentID] {
			index[c.ID] = len(nodes)
			nodes = append(nodes, CategoryNode{Category: c, Children: []Category{}})
		}
	}
	for _, c := range categories {
		if c.IsRoot() || !present[*c.ParentID] {
			continue
		}
		if i, ok := index[*c.ParentID]; ok {
			nodes[i].Children = append(nodes[i].Children, c)
		}
	}
	return nodes
}
