package pools

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"lapswim-service/internal/app/config"
	"lapswim-service/internal/app/contracts"
	"lapswim-service/internal/app/models"
	"lapswim-service/internal/pkg/exceptions"
)

// poolFileRepository serves the pool registry from a JSON config file. The
// registry is read once at startup; its order is the canonical listing order
// everywhere downstream.
type poolFileRepository struct {
	pools []models.Pool
	byID  map[string]models.Pool
}

func NewPoolFileRepository(internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.PoolRepository, error) {
	path := internalConfig.Schedule.PoolsConfigFile

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, exceptions.ErrPoolsConfigLoad(err, path)
	}

	var pools []models.Pool
	if err := json.Unmarshal(data, &pools); err != nil {
		return nil, exceptions.ErrPoolsConfigLoad(err, path)
	}

	byID := make(map[string]models.Pool, len(pools))
	for _, pool := range pools {
		byID[pool.ID] = pool
	}

	logger.Info("poolFileRepository loaded pool registry",
		zap.String("path", path),
		zap.Int("pool_count", len(pools)),
	)

	return &poolFileRepository{pools: pools, byID: byID}, nil
}

func (r *poolFileRepository) FindAll(ctx context.Context) ([]models.Pool, error) {
	return r.pools, nil
}

func (r *poolFileRepository) FindByID(ctx context.Context, poolID string) (*models.Pool, error) {
	pool, ok := r.byID[poolID]
	if !ok {
		return nil, exceptions.ErrPoolNotFound(fmt.Errorf("unknown pool %s", poolID))
	}
	return &pool, nil
}
