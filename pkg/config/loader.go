package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache keeps one parsed copy per configuration type.
type cache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	store = &cache{values: make(map[reflect.Type]any)}

	defaultEnvLoaded sync.Once
)

// LoadEnv loads the given .env files into the process environment.
// Without arguments the .env file of the working directory is used.
// Variables already set in the process are never overwritten.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v using `env` struct tags.
// The first successful parse of a type is cached and later calls for the
// same type are served from the cache.
//
// Example:
//
//	type DatabaseConfig struct {
//		Host string `env:"DB_HOST" envDefault:"localhost"`
//		Port int    `env:"DB_PORT" envDefault:"5432"`
//	}
//
//	var cfg DatabaseConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// .env is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeOf[T]()

	store.mu.Lock()
	defer store.mu.Unlock()

	if cached, ok := store.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	store.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops every cached configuration. Intended for tests.
func Reset() {
	store.mu.Lock()
	defer store.mu.Unlock()
	clear(store.values)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
