package domain

import "time"

type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order binds one buyer to one item. An item is the subject of at most
// one order ever; status never moves past in_progress in this service.
type Order struct {
	ID        string
	ItemID    string
	BuyerID   string
	Status    OrderStatus
	CreatedAt time.Time
}
