package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/sellhub/account-market/api/web"
	"github.com/sellhub/account-market/api/weberr"
	"github.com/sellhub/account-market/core/claims"
)

// userIDKey is the session key holding the logged-in user id.
const userIDKey = "user_id"

// LoadAndSave adapts the scs middleware to the web.Handler signature so
// every request runs inside a session context.
func LoadAndSave(session *scs.SessionManager) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			var err error

			sh := session.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				err = handler(r.Context(), w, r)
			}))

			sh.ServeHTTP(w, r.WithContext(ctx))
			return err
		}
		return h
	}
	return m
}

// Authenticate rejects requests without a logged-in session and exposes
// the user id through the claims package.
func Authenticate(session *scs.SessionManager) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			id := session.GetInt(ctx, userIDKey)
			if id == 0 {
				return weberr.NotAuthorized(errors.New("user not authenticated"))
			}

			ctx = claims.Set(ctx, claims.Claims{UserID: id})
			return handler(ctx, w, r)
		}
		return h
	}
	return m
}
