package usecase

import (
	"context"
	"errors"

	"github.com/Wilmaryucuma7/real-estate-api/internal/contextkeys"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/port"
)

// GetOwnerUseCase - карточка владельца по идентификатору.
type GetOwnerUseCase struct {
	owners port.OwnerStoragePort
}

func NewGetOwnerUseCase(owners port.OwnerStoragePort) *GetOwnerUseCase {
	return &GetOwnerUseCase{owners: owners}
}

func (uc *GetOwnerUseCase) Execute(ctx context.Context, id string) (*domain.OwnerView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetOwner", "owner_id": id})
	ucLogger.Debug("Use case started", nil)

	owner, err := uc.owners.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			ucLogger.Warn("Owner not found", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return nil, err
	}

	view := domain.NewOwnerView(*owner)

	ucLogger.Info("Use case finished successfully", nil)
	return &view, nil
}
