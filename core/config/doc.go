// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct
// fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/mailbundle/core/config"
//
//	type SMTPConfig struct {
//		Host     string `env:"SMTP_HOST,required"`
//		Port     int    `env:"SMTP_PORT" envDefault:"587"`
//		Username string `env:"SMTP_USERNAME,required"`
//		Password string `env:"SMTP_PASSWORD,required"`
//	}
//
//	func main() {
//		var cfg SMTPConfig
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// Each type has its own cache entry; loading the same type twice returns
// the value parsed on the first call.
package config
