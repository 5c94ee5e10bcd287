package cart

import (
	"time"

	"github.com/sellhub/account-market/core/account"
)

// Item associates a user with an account they intend to purchase. At most
// one item exists per (user, account) pair; quantity is always 1.
type Item struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	AccountID int       `json:"accountId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

type ItemNew struct {
	UserID    int `json:"userId" validate:"required"`
	AccountID int `json:"accountId" validate:"required"`
}

// JoinedItem is a cart item together with its account record, the shape
// the cart page renders.
type JoinedItem struct {
	Item
	Account account.Account `json:"account"`
}
