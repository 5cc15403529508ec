package factory

import (
	"errors"
	"io"
	"log/slog"

	"arcade/internal/dependencies/clock"
	"arcade/internal/services/identity"
	"arcade/internal/services/progress"
	"arcade/internal/services/score"
	"arcade/internal/services/session"
	"arcade/internal/services/stats"
	"arcade/internal/storage"
	"arcade/internal/storage/memory"
	redisstorage "arcade/internal/storage/redis"
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
	Clock clock.Clock

	// Services
	IdentityService *identity.Service
	SessionService  *session.Service
	ScoreService    *score.Service
	ProgressService *progress.Service
	StatsService    *stats.Service
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

// New creates a new application with all dependencies wired. The store
// handle is constructed once here and injected into every service; its
// lifecycle is bound to the process via Close.
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
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

	return newWithDependencies(store, clock.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies
func newWithDependencies(store storage.Storage, clk clock.Clock, logger *slog.Logger) *App {
	return &App{
		Storage:         store,
		Clock:           clk,
		IdentityService: identity.New(store, clk, logger),
		SessionService:  session.New(store, clk, logger),
		ScoreService:    score.New(store, clk, logger),
		ProgressService: progress.New(store, clk, logger),
		StatsService:    stats.New(store, logger),
	}
}

// Close releases resources held by the application's storage backend
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
