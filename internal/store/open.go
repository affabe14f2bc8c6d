package store

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/banco-questoes/internal/config"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

func Open(ctx context.Context, settings config.Settings) (Store, error) {
	log := config.WithContext(ctx)

	switch settings.StoreDriver {
	case DriverMemory:
		log.Warn("Usando armazenamento em memória; os dados não sobrevivem ao processo")
		return NewMemoryStore(), nil
	case DriverPostgres, "":
		if err := config.Connect(ctx, settings.DatabaseDSN); err != nil {
			return nil, err
		}
		if err := Migrate(config.DB); err != nil {
			return nil, fmt.Errorf("failed to migrate kv_entries: %w", err)
		}
		return NewGormStore(config.DB), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", settings.StoreDriver)
	}
}
