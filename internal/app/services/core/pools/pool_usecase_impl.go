package pools

import (
	"context"

	"go.uber.org/zap"

	"lapswim-service/internal/app/contracts"
	"lapswim-service/internal/pkg/dto/responses"
)

type poolUsecase struct {
	PoolRepository contracts.PoolRepository
	Log            *zap.Logger
}

func NewPoolUsecase(poolRepository contracts.PoolRepository, logger *zap.Logger) contracts.PoolUsecase {
	return &poolUsecase{
		PoolRepository: poolRepository,
		Log:            logger,
	}
}

func (uc *poolUsecase) FindAll(ctx context.Context) ([]responses.Pool, error) {
	pools, err := uc.PoolRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Pool, 0, len(pools))
	for _, pool := range pools {
		result = append(result, pool.ConvertIntoResponse())
	}
	return result, nil
}

func (uc *poolUsecase) FindByID(ctx context.Context, poolID string) (*responses.Pool, error) {
	pool, err := uc.PoolRepository.FindByID(ctx, poolID)
	if err != nil {
		return nil, err
	}

	response := pool.ConvertIntoResponse()
	return &response, nil
}
