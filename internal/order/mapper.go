package order

import "time"

// Response is the read shape for an order. Totals come from stored state,
// never recomputed from live prices.
type Response struct {
	ID            int            `json:"id"`
	Code          string         `json:"code"`
	CreatedAt     time.Time      `json:"created_at"`
	Status        OrderStatus    `json:"status"`
	FullName      string         `json:"full_name"`
	Email         *string        `json:"email,omitempty"`
	Phone         string         `json:"phone"`
	DeliveryMode  DeliveryMode   `json:"delivery_mode"`
	Address       *string        `json:"address"`
	Notes         *string        `json:"notes,omitempty"`
	PaymentMethod PaymentMethod  `json:"payment_method"`
	Total         int            `json:"total"`
	Items         []ItemResponse `json:"items"`
}

type ItemResponse struct {
	Product   string `json:"product"`
	SKU       string `json:"sku"`
	Quantity  int    `json:"quantity"`
	Price     int    `json:"price"`
	LineTotal int    `json:"line_total"`
}

func ToResponse(o *Order) *Response {
	if o == nil {
		return nil
	}

	items := make([]ItemResponse, 0, len(o.Items))
	for _, i := range o.Items {
		items = append(items, ItemResponse{
			Product:   i.ProductName,
			SKU:       i.ProductSKU,
			Quantity:  i.Quantity,
			Price:     i.Price,
			LineTotal: i.LineTotal(),
		})
	}

	return &Response{
		ID:            o.ID,
		Code:          o.Code,
		CreatedAt:     o.CreatedAt,
		Status:        o.Status,
		FullName:      o.FullName,
		Email:         o.Email,
		Phone:         o.Phone,
		DeliveryMode:  o.DeliveryMode,
		Address:       o.Address,
		Notes:         o.Notes,
		PaymentMethod: o.PaymentMethod,
		Total:         o.Total,
		Items:         items,
	}
}
