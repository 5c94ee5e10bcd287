package cart

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sellhub/account-market/api/web"
	"github.com/sellhub/account-market/api/weberr"
	"github.com/sellhub/account-market/validate"
)

type message struct {
	Message string `json:"message"`
}

func HandleShow(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		// A non-numeric user id matches no entries; the cart page always
		// gets an array back.
		userID, _ := strconv.Atoi(web.Param(r, "user_id"))

		return web.Respond(ctx, w, store.ListForUser(userID), http.StatusOK)
	}
}

func HandleCreateItem(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var in ItemNew
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(err)
		}

		if err := validate.Check(in); err != nil {
			fields, _ := validate.Fields(err)
			return weberr.Validation(err, fields)
		}

		return web.Respond(ctx, w, store.Add(in.UserID, in.AccountID), http.StatusCreated)
	}
}

func HandleDeleteItem(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		userID, err := web.ParamID(r, "user_id")
		if err != nil {
			return weberr.NotFound(err)
		}

		accountID, err := web.ParamID(r, "account_id")
		if err != nil {
			return weberr.NotFound(err)
		}

		if !store.Remove(userID, accountID) {
			err := fmt.Errorf("no cart item for user[%d] account[%d]", userID, accountID)
			return weberr.NotFound(err)
		}

		return web.Respond(ctx, w, message{"item removed from cart"}, http.StatusOK)
	}
}

func HandleClear(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		userID, _ := strconv.Atoi(web.Param(r, "user_id"))

		store.Clear(userID)
		return web.Respond(ctx, w, message{"cart cleared"}, http.StatusOK)
	}
}
