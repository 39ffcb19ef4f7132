// Package config loads typed configuration from environment variables.
//
// Structs describe their variables with caarlos0/env tags:
//
//	type Config struct {
//	    Addr    string        `env:"HTTP_ADDR" envDefault:":8080"`
//	    Timeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// The first Load call reads an optional .env file from the working directory;
// LoadEnv loads other files explicitly. Values already present in the process
// environment take precedence over file values.
//
// Each struct type is parsed once and served from a cache afterwards. Reset
// clears the cache between tests.
package config
