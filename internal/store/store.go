package store

import (
	"fmt"

	"github.com/user/drrm-simulator/config"
	"github.com/user/drrm-simulator/internal/interfaces"
)

// Ensure every backend satisfies interfaces.Store
var (
	_ interfaces.Store = (*MemoryStore)(nil)
	_ interfaces.Store = (*FileStore)(nil)
	_ interfaces.Store = (*RedisStore)(nil)
)

// New builds the store selected by cfg.Driver
func New(cfg config.StorageConfig) (interfaces.Store, error) {
	switch cfg.Driver {
	case "memory":
		return NewMemoryStore(), nil
	case "", "file":
		return NewFileStore(cfg.Path)
	case "redis":
		return DialRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.KeyPrefix)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
