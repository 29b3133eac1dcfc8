package usecase

import (
	"context"
	"errors"

	"github.com/Wilmaryucuma7/real-estate-api/internal/contextkeys"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/port"
)

// GetPropertyDetailsUseCase - детальная карточка по первичному идентификатору.
type GetPropertyDetailsUseCase struct {
	properties port.PropertyStoragePort
	owners     port.OwnerStoragePort
}

func NewGetPropertyDetailsUseCase(properties port.PropertyStoragePort, owners port.OwnerStoragePort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{properties: properties, owners: owners}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, id string) (*domain.PropertyDetailView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetPropertyDetails", "property_id": id})
	ucLogger.Debug("Use case started", nil)

	property, err := uc.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			ucLogger.Warn("Property not found", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return nil, err
	}

	view, err := assembleDetail(ctx, uc.owners, ucLogger, *property)
	if err != nil {
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return view, nil
}

// assembleDetail дорезолвливает владельца и собирает карточку.
// Висячая ссылка на владельца не считается ошибкой - карточка отдается
// без блока владельца. Сбой хранилища при этом не маскируется.
func assembleDetail(ctx context.Context, owners port.OwnerStoragePort, logger port.LoggerPort, property domain.Property) (*domain.PropertyDetailView, error) {
	var owner *domain.Owner
	if property.OwnerID != "" {
		found, err := owners.GetByID(ctx, property.OwnerID)
		switch {
		case err == nil:
			owner = found
		case errors.Is(err, domain.ErrOwnerNotFound):
			logger.Warn("Property references missing owner", port.Fields{"owner_id": property.OwnerID})
		default:
			logger.Error("Owner lookup failed", err, port.Fields{"owner_id": property.OwnerID})
			return nil, err
		}
	}

	view := domain.NewPropertyDetailView(property, owner)
	return &view, nil
}
