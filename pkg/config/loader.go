package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu     sync.RWMutex
	cache  = make(map[string]any)
	loadMu sync.Mutex

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into the provided configuration
// struct based on `env` field tags. The first call loads the default
// .env file if one exists. Each configuration type is parsed once per
// process; later calls return the cached value so every consumer sees
// the same configuration.
//
//	type ServerConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional; absence is not an error.
		_ = godotenv.Load()
	})

	if v == nil {
		return ErrNilPointer
	}

	typeName := typeNameOf[T]()

	mu.RLock()
	cached, ok := cache[typeName]
	mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	// Serialize first-time parsing so concurrent callers of the same type
	// do not race env.Parse.
	loadMu.Lock()
	defer loadMu.Unlock()

	mu.RLock()
	cached, ok = cache[typeName]
	mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	mu.Lock()
	cache[typeName] = *v // store a copy so callers cannot mutate the cache
	mu.Unlock()

	return nil
}

// MustLoad works like Load but panics on failure. Use for configuration
// the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func typeNameOf[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
