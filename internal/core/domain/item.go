package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ItemStatus string

const (
	ItemStatusAvailable ItemStatus = "available"
	ItemStatusSold      ItemStatus = "sold"
)

type Item struct {
	ID          string
	Title       string
	Description string
	Price       decimal.Decimal
	Status      ItemStatus
	OwnerID     string
	CategoryID  string
	CreatedAt   time.Time
}
