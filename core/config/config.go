package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> cached config value
)

// Load parses environment variables into cfg and caches the result by type.
// Subsequent calls for the same type copy the cached value into cfg without
// touching the environment again. A .env file in the working directory is
// loaded on the first call; a missing file is not an error.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenvOnce.Do(func() {
		// Existing environment variables take precedence over .env values.
		_ = godotenv.Load()
	})

	typ := reflect.TypeFor[T]()
	if v, ok := cache.Load(typ); ok {
		*cfg = v.(T)
		return nil
	}

	var loaded T
	if err := env.Parse(&loaded); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrParse, typ, err)
	}

	v, _ := cache.LoadOrStore(typ, loaded)
	*cfg = v.(T)
	return nil
}

// MustLoad is like Load but panics on failure. Useful during startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
