package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	loadDotenv sync.Once
	dotenvErr  error
	cache      sync.Map // reflect.Type -> value of that type
	mu         sync.Mutex
)

// Load fills cfg from the environment. The first call loads .env from the
// working directory if present; variables already set are not overridden.
// Each type is parsed once and later calls copy the cached value.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config: nil target")
	}

	typ := reflect.TypeFor[T]()
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	loadDotenv.Do(func() {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			dotenvErr = fmt.Errorf("config: load .env: %w", err)
		}
	})
	if dotenvErr != nil {
		return dotenvErr
	}

	var loaded T
	if err := env.Parse(&loaded); err != nil {
		return fmt.Errorf("config: parse %s: %w", typ, err)
	}
	cache.Store(typ, loaded)
	*cfg = loaded
	return nil
}

// MustLoad is Load that panics on error. Intended for process startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Parse fills cfg from environ only, without .env loading or caching.
func Parse[T any](cfg *T, environ map[string]string) error {
	if cfg == nil {
		return errors.New("config: nil target")
	}
	var parsed T
	if err := env.ParseWithOptions(&parsed, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("config: parse %s: %w", reflect.TypeFor[T](), err)
	}
	*cfg = parsed
	return nil
}
