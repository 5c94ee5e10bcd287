package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/sellhub/account-market/api/web"
	"github.com/sellhub/account-market/api/weberr"
	"github.com/sellhub/account-market/core/user"
	"github.com/sellhub/account-market/validate"
)

func HandleSignup(users *user.Store, session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var nu user.UserNew
		if err := web.Decode(w, r, &nu); err != nil {
			return weberr.BadRequest(err)
		}

		if err := validate.Check(nu); err != nil {
			fields, _ := validate.Fields(err)
			return weberr.Validation(err, fields)
		}

		u, err := users.Create(nu)
		if err != nil {
			if errors.Is(err, user.ErrDuplicate) {
				return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
			}
			return fmt.Errorf("creating user: %w", err)
		}

		if err := session.RenewToken(ctx); err != nil {
			return fmt.Errorf("renewing session token: %w", err)
		}
		session.Put(ctx, userIDKey, u.ID)

		return web.Respond(ctx, w, u, http.StatusCreated)
	}
}

func HandleLogin(users *user.Store, session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var creds struct {
			Username string `json:"username" validate:"required"`
			Password string `json:"password" validate:"required"`
		}
		if err := web.Decode(w, r, &creds); err != nil {
			return weberr.BadRequest(err)
		}

		if err := validate.Check(creds); err != nil {
			fields, _ := validate.Fields(err)
			return weberr.Validation(err, fields)
		}

		u, err := users.Authenticate(creds.Username, creds.Password)
		if err != nil {
			return weberr.NewError(err, err.Error(), http.StatusUnauthorized)
		}

		if err := session.RenewToken(ctx); err != nil {
			return fmt.Errorf("renewing session token: %w", err)
		}
		session.Put(ctx, userIDKey, u.ID)

		return web.Respond(ctx, w, u, http.StatusOK)
	}
}

func HandleLogout(session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		if err := session.Destroy(ctx); err != nil {
			return fmt.Errorf("destroying session: %w", err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}
