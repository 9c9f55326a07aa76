// Package config loads typed configuration from environment variables.
//
//	type Config struct {
//		Host string `env:"HOST" envDefault:"0.0.0.0"`
//		Port int    `env:"PORT" envDefault:"2339"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// A .env file in the working directory is read once on first use. Parsing is
// done by caarlos0/env, so nested structs, defaults, required fields and
// durations follow its tag syntax. Each type is parsed once per process and
// cached; later Load calls for the same type return the cached value.
//
// Parse reads from an explicit map and skips both the .env file and the cache.
package config
