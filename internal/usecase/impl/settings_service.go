package impl

import (
	"context"

	"hvacops/internal/domain/entity"
	"hvacops/internal/domain/repository"
	"hvacops/internal/errors"
	"hvacops/internal/usecase"
)

type settingsService struct {
	store repository.SnapshotStore
}

// NewSettingsService creates the business settings service.
func NewSettingsService(store repository.SnapshotStore) usecase.SettingsUsecase {
	return &settingsService{store: store}
}

func (s *settingsService) Get(ctx context.Context) (*entity.BusinessSettings, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	settings := snap.BusinessSettings
	return &settings, nil
}
