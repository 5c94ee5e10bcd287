package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/ardanlabs/conf/v3"
	"github.com/sellhub/account-market/api"
	"github.com/sellhub/account-market/config"
	"github.com/sellhub/account-market/core/account"
	"github.com/sellhub/account-market/core/cart"
	"github.com/sellhub/account-market/core/order"
	"github.com/sellhub/account-market/core/user"
	"github.com/sellhub/account-market/rate"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if err := Run(log); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func Run(logger *logrus.Logger) error {
	logger.Infof("starting server")
	defer logger.Info("shutdown complete")

	const prefix = "MARKET"
	var cfg config.Config
	if help, err := conf.Parse(prefix, &cfg); err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	lw := logger.Writer()
	defer lw.Close()
	errLog := log.New(lw, "", 0)

	accounts := account.NewStore()
	if cfg.Store.Seed {
		account.Seed(accounts)
		logger.Info("seeded demo catalog")
	}

	carts := cart.NewStore(accounts)
	users := user.NewStore()
	orders := order.NewStore()

	sessionManager := scs.New()
	sessionManager.Lifetime = 24 * time.Hour

	var limiter *rate.Limiter
	if cfg.Rate.Enabled {
		limiter = rate.NewLimiter(cfg.Rate.Burst, cfg.Rate.Expiry, cfg.Rate.RPS)
	}

	mux := api.APIMux(api.APIConfig{
		CorsOrigin: cfg.Cors.Origin,
		Log:        logger,
		Session:    sessionManager,
		Limiter:    limiter,
		Accounts:   accounts,
		Carts:      carts,
		Users:      users,
		Orders:     orders,
	})

	srv := http.Server{
		Handler:      mux,
		Addr:         cfg.Web.Address,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     errLog,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Infof("starting api router at %s", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Infof("shutting down: signal %s", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}
