package storage

import (
	"context"

	"github.com/onurcolak/direct-message-service/environments"
	"github.com/onurcolak/direct-message-service/internal/repository"
	"github.com/onurcolak/direct-message-service/pkg/database"
	"github.com/onurcolak/direct-message-service/pkg/kvstore"
	"github.com/onurcolak/direct-message-service/pkg/logger"
	"github.com/onurcolak/direct-message-service/pkg/redis"
)

const (
	BackendValkey = "valkey"
	BackendMySQL  = "mysql"
	BackendMemory = "memory"
)

// Backend is the key-value persistence shared by the history and settings stores.
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}

// Open connects to the configured backend and returns it with its name.
// An unreachable or unknown backend falls back to memory so the service
// still starts.
func Open(cfg *environments.Config) (Backend, string) {
	switch cfg.Storage.Backend {
	case BackendValkey:
		client, err := redis.NewRedisClient(cfg.Redis)
		if err != nil {
			logger.Warnf("Valkey not available, history will not survive restarts: %v", err)
			return kvstore.NewMemory(), BackendMemory
		}
		return client, BackendValkey

	case BackendMySQL:
		db, err := database.NewMySQLDB(cfg.Database)
		if err != nil {
			logger.Warnf("MySQL not available, history will not survive restarts: %v", err)
			return kvstore.NewMemory(), BackendMemory
		}

		if err := database.RunMigrations(db); err != nil {
			logger.Warnf("MySQL migrations failed, falling back to memory: %v", err)
			db.Close()
			return kvstore.NewMemory(), BackendMemory
		}
		return repository.NewKVRepository(db), BackendMySQL

	case BackendMemory:
		return kvstore.NewMemory(), BackendMemory

	default:
		logger.Warnf("Unknown STORAGE_BACKEND %q, using memory", cfg.Storage.Backend)
		return kvstore.NewMemory(), BackendMemory
	}
}
