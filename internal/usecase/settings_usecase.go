package usecase

import (
	"context"

	"hvacops/internal/domain/entity"
)

// SettingsUsecase exposes the read-only business settings block.
type SettingsUsecase interface {
	Get(ctx context.Context) (*entity.BusinessSettings, error)
}
