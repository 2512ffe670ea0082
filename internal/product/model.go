package product

import "floreria-be/internal/category"

type Product struct {
	ID         string  `json:"id"`
	SKU        string  `json:"sku"`
	Name       string  `json:"name"`
	CategoryID int     `json:"-"`
	Price      int     `json:"price"`
	Stock      int     `json:"stock"`
	Image      *string `json:"image"`
	Barcode    *string `json:"barcode,omitempty"`

	Category *category.Category `json:"category,omitempty"`
}

// CreateParams is the write shape: category comes in as a bare reference,
// id is optional and generated when absent.
type CreateParams struct {
	ID         string
	SKU        string
	Name       string
	CategoryID int
	Price      int
	Stock      int
	Image      *string
	Barcode    *string
}

// UpdateParams carries only the fields present in the request.
type UpdateParams struct {
	SKU        *string
	Name       *string
	CategoryID *int
	Price      *int
	Stock      *int
	Image      *string
	Barcode    *string
}

func (p UpdateParams) HasAnyField() bool {
	return p.SKU != nil ||
		p.Name != nil ||
		p.CategoryID != nil ||
		p.Price != nil ||
		p.Stock != nil ||
		p.Image != nil ||
		p.Barcode != nil
}
