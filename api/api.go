package api

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/gorilla/mux"
	"github.com/sellhub/account-market/api/middleware"
	"github.com/sellhub/account-market/api/web"
	"github.com/sellhub/account-market/core/account"
	"github.com/sellhub/account-market/core/auth"
	"github.com/sellhub/account-market/core/cart"
	"github.com/sellhub/account-market/core/order"
	"github.com/sellhub/account-market/core/user"
	"github.com/sellhub/account-market/rate"
	"github.com/sirupsen/logrus"
)

type APIConfig struct {
	CorsOrigin string
	Log        logrus.FieldLogger
	Session    *scs.SessionManager
	Limiter    *rate.Limiter
	Accounts   *account.Store
	Carts      *cart.Store
	Users      *user.Store
	Orders     *order.Store
}

type api struct {
	*mux.Router
	mw  []web.Middleware
	log logrus.FieldLogger
}

func APIMux(cfg APIConfig) http.Handler {
	a := &api{
		Router: mux.NewRouter(),
		log:    cfg.Log,
	}

	a.mw = append(a.mw, auth.LoadAndSave(cfg.Session))
	a.mw = append(a.mw, middleware.RequestID())
	a.mw = append(a.mw, middleware.Logger(cfg.Log))
	a.mw = append(a.mw, middleware.Errors(cfg.Log))
	a.mw = append(a.mw, middleware.Panics())

	if cfg.Limiter != nil {
		a.mw = append(a.mw, middleware.RateLimit(cfg.Limiter))
	}

	if cfg.CorsOrigin != "" {
		a.mw = append(a.mw, middleware.Cors(cfg.CorsOrigin))

		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}

		a.Handle(http.MethodOptions, "/{path:.*}", h)
	}

	authen := auth.Authenticate(cfg.Session)

	a.Handle(http.MethodPost, "/api/auth/signup", auth.HandleSignup(cfg.Users, cfg.Session))
	a.Handle(http.MethodPost, "/api/auth/login", auth.HandleLogin(cfg.Users, cfg.Session))
	a.Handle(http.MethodPost, "/api/auth/logout", auth.HandleLogout(cfg.Session))

	a.Handle(http.MethodGet, "/api/users/current", user.HandleShowCurrent(cfg.Users), authen)
	a.Handle(http.MethodGet, "/api/users/{id}", user.HandleShow(cfg.Users), authen)

	a.Handle(http.MethodGet, "/api/accounts", account.HandleList(cfg.Accounts))
	a.Handle(http.MethodGet, "/api/accounts/{id}", account.HandleShow(cfg.Accounts))
	a.Handle(http.MethodPost, "/api/accounts", account.HandleCreate(cfg.Accounts))
	a.Handle(http.MethodPut, "/api/accounts/{id}", account.HandleUpdate(cfg.Accounts))
	a.Handle(http.MethodDelete, "/api/accounts/{id}", account.HandleDelete(cfg.Accounts))

	a.Handle(http.MethodGet, "/api/cart/{user_id}", cart.HandleShow(cfg.Carts))
	a.Handle(http.MethodPost, "/api/cart", cart.HandleCreateItem(cfg.Carts))
	a.Handle(http.MethodDelete, "/api/cart/{user_id}/{account_id}", cart.HandleDeleteItem(cfg.Carts))
	a.Handle(http.MethodDelete, "/api/cart/{user_id}", cart.HandleClear(cfg.Carts))

	a.Handle(http.MethodPost, "/api/orders", order.HandleCheckout(cfg.Orders, cfg.Carts, cfg.Accounts), authen)
	a.Handle(http.MethodGet, "/api/orders", order.HandleList(cfg.Orders), authen)

	return a.Router
}

func (a *api) Handle(method string, path string, handler web.Handler, mw ...web.Middleware) {

	handler = web.WrapMiddleware(mw, handler)

	handler = web.WrapMiddleware(a.mw, handler)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()

		if err := handler(ctx, w, r); err != nil {

			a.log.WithFields(logrus.Fields{
				"req_id":  middleware.ContextRequestID(ctx),
				"message": err,
			}).Error("ERROR")
		}
	})

	a.Router.Handle(path, h).Methods(method)
}
