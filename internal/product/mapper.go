package product

import "strings"

// Representation is the read shape exposed over HTTP. It differs from the
// stored model only in the image field, which is materialized into an
// absolute URL against the current request origin.
type Representation struct {
	ID       string  `json:"id"`
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Price    int     `json:"price"`
	Stock    int     `json:"stock"`
	Image    *string `json:"image"`
	Barcode  *string `json:"barcode,omitempty"`
	Category any     `json:"category"`
}

// ToRepresentation maps a product for a response. origin is the scheme and
// host of the current request, e.g. "http://localhost:8000".
func ToRepresentation(p *Product, origin string) *Representation {
	if p == nil {
		return nil
	}

	return &Representation{
		ID:       p.ID,
		SKU:      p.SKU,
		Name:     p.Name,
		Price:    p.Price,
		Stock:    p.Stock,
		Image:    AbsoluteImageURL(p.Image, origin),
		Barcode:  p.Barcode,
		Category: p.Category,
	}
}

// AbsoluteImageURL turns a stored image reference into an absolute URL.
// Already-absolute references pass through untouched; absent images stay nil.
func AbsoluteImageURL(image *string, origin string) *string {
	if image == nil || *image == "" {
		return nil
	}
	if strings.HasPrefix(*image, "http") {
		return image
	}

	url := strings.TrimSuffix(origin, "/") + "/" + strings.TrimPrefix(*image, "/")
	return &url
}
