package domain

import "context"

// Order is a past order shown in the account order history.
type Order struct {
	ID     string      `json:"id"`
	Date   string      `json:"date"`
	Total  float64     `json:"total"`
	Status string      `json:"status"`
	Items  []OrderItem `json:"items"`
}

// OrderItem is one product line of an order.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image"`
}

// Subscription is an active or past subscription of a customer.
type Subscription struct {
	ID          string `json:"id"`
	ProductName string `json:"productName"`
	Status      string `json:"status"`
	NextBilling string `json:"nextBilling"`
}

// OrderRepository is the port for a customer's order and subscription
// history, keyed by account email.
type OrderRepository interface {
	ListOrders(ctx context.Context, email string) ([]Order, error)
	ListSubscriptions(ctx context.Context, email string) ([]Subscription, error)
}
