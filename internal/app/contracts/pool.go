package contracts

import (
	"context"

	"lapswim-service/internal/app/models"
	"lapswim-service/internal/pkg/dto/responses"
)

type PoolUsecase interface {
	FindAll(ctx context.Context) ([]responses.Pool, error)
	FindByID(ctx context.Context, poolID string) (*responses.Pool, error)
}

type PoolRepository interface {
	FindAll(ctx context.Context) ([]models.Pool, error)
	FindByID(ctx context.Context, poolID string) (*models.Pool, error)
}
