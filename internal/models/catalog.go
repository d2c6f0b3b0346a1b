package models

// Category is a top-level catalog section.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}

// Subcategory belongs to a Category and declares which attribute keys are
// valid for its products.
type Subcategory struct {
	ID         string   `json:"id"`
	CategoryID string   `json:"categoryId"`
	Name       string   `json:"name"`
	Slug       string   `json:"slug"`
	Attributes []string `json:"attributes"`
}

// ProductAttribute is a single key/value spec entry on a product, e.g.
// {"RAM", "12GB"}.
type ProductAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Product represents a catalog item.
type Product struct {
	ID            string             `json:"id"`
	SubCategoryID string             `json:"subCategoryId"`
	Name          string             `json:"name" validate:"required,min=3,max=100"`
	Description   string             `json:"description" validate:"omitempty,max=500"`
	Price         float64            `json:"price" validate:"required,gt=0"`
	DiscountPrice float64            `json:"discountPrice,omitempty" validate:"omitempty,gt=0,ltefield=Price"`
	Stock         int                `json:"stock" validate:"gte=0"`
	Images        []string           `json:"images"`
	Attributes    []ProductAttribute `json:"attributes"`
	Rating        float64            `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount   int                `json:"reviewCount" validate:"gte=0"`
	IsFeatured    bool               `json:"isFeatured"`
}

// SalePrice returns the price customers actually pay: the discount price
// when one is set, the list price otherwise.
func (p Product) SalePrice() float64 {
	if p.DiscountPrice > 0 {
		return p.DiscountPrice
	}
	return p.Price
}

// Clone returns a deep copy of the product.
func (p Product) Clone() Product {
	c := p
	c.Images = cloneSlice(p.Images)
	c.Attributes = cloneSlice(p.Attributes)
	return c
}
