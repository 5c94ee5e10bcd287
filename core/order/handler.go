package order

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sellhub/account-market/api/web"
	"github.com/sellhub/account-market/api/weberr"
	"github.com/sellhub/account-market/core/account"
	"github.com/sellhub/account-market/core/cart"
	"github.com/sellhub/account-market/core/claims"
	"github.com/sellhub/account-market/validate"
)

// HandleCheckout turns the session user's cart into an order: each account
// in the cart is marked sold and the cart is cleared. There is no external
// payment step, so the order succeeds immediately.
func HandleCheckout(orders *Store, carts *cart.Store, accounts *account.Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		clm, err := claims.Get(ctx)
		if err != nil {
			return weberr.NotAuthorized(errors.New("user not authenticated"))
		}

		items := carts.ListForUser(clm.UserID)
		if len(items) == 0 {
			err := errors.New("no items to checkout")
			return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
		}

		now := time.Now().UTC()
		ord := Order{
			ID:        validate.GenerateID(),
			UserID:    clm.UserID,
			Status:    Success,
			CreatedAt: now,
			UpdatedAt: now,
		}

		sold := account.Sold
		for _, it := range items {
			ord.Items = append(ord.Items, Item{
				OrderID:   ord.ID,
				AccountID: it.AccountID,
				Price:     it.Account.Price,
				CreatedAt: now,
			})
			ord.Total += it.Account.Price

			accounts.Update(it.AccountID, account.AccountUp{Status: &sold})
		}

		orders.Create(ord)
		carts.Clear(clm.UserID)

		return web.Respond(ctx, w, ord, http.StatusCreated)
	}
}

func HandleList(orders *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		clm, err := claims.Get(ctx)
		if err != nil {
			return weberr.NotAuthorized(errors.New("user not authenticated"))
		}

		return web.Respond(ctx, w, orders.ListForUser(clm.UserID), http.StatusOK)
	}
}
