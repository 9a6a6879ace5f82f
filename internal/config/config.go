// Package config loads configuration structs from the environment, reading a
// .env file first when one exists.
package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParse is returned when environment variables cannot be parsed into
	// the config struct.
	ErrParse = errors.New("config: failed to parse environment")

	// ErrNilPointer is returned when a nil pointer is passed to Load.
	ErrNilPointer = errors.New("config: nil pointer")
)

var dotEnvOnce sync.Once

// Load fills cfg from the environment. Struct fields use `env` tags; nested
// structs are parsed recursively. A missing .env file is not an error.
func Load[T any](cfg *T) error {
	dotEnvOnce.Do(func() {
		_ = godotenv.Load()
	})
	if cfg == nil {
		return ErrNilPointer
	}
	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParse, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the process cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("load configuration: %v", err))
	}
}
