package user

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sellhub/account-market/api/web"
	"github.com/sellhub/account-market/api/weberr"
	"github.com/sellhub/account-market/core/claims"
)

func HandleShowCurrent(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		clm, err := claims.Get(ctx)
		if err != nil {
			return weberr.NotAuthorized(err)
		}

		u, ok := store.Get(clm.UserID)
		if !ok {
			return weberr.NotFound(fmt.Errorf("user[%d] does not exist", clm.UserID))
		}

		return web.Respond(ctx, w, u, http.StatusOK)
	}
}

func HandleShow(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.ParamID(r, "id")
		if err != nil {
			return weberr.NotFound(err)
		}

		u, ok := store.Get(id)
		if !ok {
			return weberr.NotFound(fmt.Errorf("user[%d] does not exist", id))
		}

		return web.Respond(ctx, w, u, http.StatusOK)
	}
}
