package shop

import (
	"github.com/shopspring/decimal"
)

// OrderItem is one line of an order as the upstream API expects it.
type OrderItem struct {
	ProductID int64           `json:"product_id"`
	Size      int             `json:"size"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Order is the POST /orders/ request body. Email and shipping fields are
// optional upstream and may be left blank.
type Order struct {
	CustomerName       string          `json:"customer_name"`
	CustomerEmail      string          `json:"customer_email"`
	CustomerPhone      string          `json:"customer_phone"`
	ShippingAddress    string          `json:"shipping_address"`
	ShippingCity       string          `json:"shipping_city"`
	ShippingPostalCode string          `json:"shipping_postal_code"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	Notes              string          `json:"notes"`
	Items              []OrderItem     `json:"items"`
}
