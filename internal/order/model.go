package order

import "time"

type OrderStatus string

const (
	StatusPaid      OrderStatus = "paid"
	StatusCancelled OrderStatus = "cancelled"
)

type DeliveryMode string

const (
	DeliveryPickup   DeliveryMode = "retiro"
	DeliveryShipping DeliveryMode = "envio"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "efectivo"
	PaymentDebit    PaymentMethod = "debito"
	PaymentCredit   PaymentMethod = "credito"
	PaymentTransfer PaymentMethod = "transferencia"
)

func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCash, PaymentDebit, PaymentCredit, PaymentTransfer:
		return true
	}
	return false
}

func ValidDeliveryMode(m DeliveryMode) bool {
	return m == DeliveryPickup || m == DeliveryShipping
}

type Order struct {
	ID            int
	Code          string
	CreatedAt     time.Time
	FullName      string
	Email         *string
	Phone         string
	DeliveryMode  DeliveryMode
	Address       *string
	Notes         *string
	PaymentMethod PaymentMethod
	Total         int
	Status        OrderStatus
	Items         []OrderItem
}

// OrderItem keeps name/sku/price snapshots taken at purchase time so order
// history survives later product edits or deletion.
type OrderItem struct {
	ID          int
	OrderID     int
	ProductID   *string
	ProductName string
	ProductSKU  string
	Quantity    int
	Price       int
}

func (i OrderItem) LineTotal() int {
	return i.Quantity * i.Price
}

// CreateOrderInput is the cart submission wire shape.
type CreateOrderInput struct {
	Customer      CustomerInput `json:"customer"`
	Delivery      DeliveryInput `json:"delivery"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Items         []ItemInput   `json:"items"`
}

type CustomerInput struct {
	FullName string  `json:"full_name"`
	Email    *string `json:"email"`
	Phone    string  `json:"phone"`
}

type DeliveryInput struct {
	Mode    DeliveryMode `json:"mode"`
	Address *string      `json:"address"`
	Notes   *string      `json:"notes"`
}

type ItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
