// Package factory wires application components together
package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/jpmiranda/regform/internal/dependencies/clock"
	"github.com/jpmiranda/regform/internal/dependencies/random"
	"github.com/jpmiranda/regform/internal/services/qrimage"
	"github.com/jpmiranda/regform/internal/services/registration"
	"github.com/jpmiranda/regform/internal/storage"
	"github.com/jpmiranda/regform/internal/storage/memory"
	redisstorage "github.com/jpmiranda/regform/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Encoder                qrimage.Encoder
	RegistrationController *registration.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()
	rnd := random.New()
	encoder := qrimage.New(logger)

	return newWithDependencies(store, clk, rnd, encoder, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, encoder qrimage.Encoder, logger *slog.Logger) *App {
	registrationController := registration.NewController(store, encoder, clk, rnd, logger)

	return &App{
		Storage:                store,
		Clock:                  clk,
		Random:                 rnd,
		Encoder:                encoder,
		RegistrationController: registrationController,
	}
}
