package config

import "time"

type Config struct {
	Web   Web
	Cors  Cors
	Rate  Rate
	Store Store
}

type Web struct {
	Address         string        `conf:"default:0.0.0.0:4000"`
	ReadTimeout     time.Duration `conf:"default:5s"`
	WriteTimeout    time.Duration `conf:"default:10s"`
	IdleTimeout     time.Duration `conf:"default:120s"`
	ShutdownTimeout time.Duration `conf:"default:20s"`
}

type Cors struct {
	Origin string
}

type Rate struct {
	Enabled bool          `conf:"default:true"`
	Burst   int           `conf:"default:20"`
	RPS     float64       `conf:"default:10"`
	Expiry  time.Duration `conf:"default:10m"`
}

type Store struct {
	// Seed loads the demo catalog on startup so a fresh process serves a
	// browsable storefront.
	Seed bool `conf:"default:false"`
}
