package domain

import "time"

// PaymentMethod tags the payment channel selected during checkout.
type PaymentMethod string

const (
	MethodSBP      PaymentMethod = "sbp"
	MethodCard     PaymentMethod = "card"
	MethodYooMoney PaymentMethod = "yoomoney"
	MethodQIWI     PaymentMethod = "qiwi"
)

// OrderSummary is the immutable record produced once, when checkout
// reaches its terminal state. LineItems is a value copy of the cart at
// wizard-open time; later cart mutations never reach a completed order.
type OrderSummary struct {
	OrderID         string        `json:"orderId"`
	RecipientHandle string        `json:"recipientHandle"`
	ContactAddress  string        `json:"contactAddress,omitempty"`
	LineItems       []LineItem    `json:"lineItems"`
	TotalPrice      int64         `json:"totalPrice"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	CompletedAt     time.Time     `json:"completedAt"`
}
