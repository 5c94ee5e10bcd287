package order

import "time"

type Status string

const (
	Pending Status = "pending"
	Success Status = "success"
)

type Order struct {
	ID        string    `json:"id"`
	UserID    int       `json:"userId"`
	Status    Status    `json:"status"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Items     []Item    `json:"items"`
}

type Item struct {
	OrderID   string    `json:"orderId"`
	AccountID int       `json:"accountId"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}
