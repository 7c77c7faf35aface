// Package config loads typed configuration from environment variables.
//
// Struct fields are populated by github.com/caarlos0/env using `env` and
// `envDefault` tags. On first use the package also reads a .env file from the
// working directory via github.com/joho/godotenv; variables that are already
// set in the environment win over the file.
//
//	import "github.com/dmitrymomot/pubsub/core/config"
//
//	var cfg pubsub.Config // Persist bool `env:"PUBSUB_PERSIST" envDefault:"false"`
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup:
//	config.MustLoad(&cfg)
//
// # Caching
//
// Each configuration type is parsed once per process. Later calls for the
// same type return the cached value, even if the environment has changed in
// between. Different types are cached independently. Failed loads are not
// cached.
//
// Errors wrap ErrParse, so callers can match them with errors.Is.
package config
