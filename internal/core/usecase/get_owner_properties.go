package usecase

import (
	"context"
	"errors"

	"github.com/Wilmaryucuma7/real-estate-api/internal/contextkeys"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/port"
)

// GetOwnerPropertiesUseCase - страница объектов одного владельца.
// Сначала проверяется, что владелец существует: запрос объектов
// несуществующего владельца - это ErrOwnerNotFound, а не пустая страница.
type GetOwnerPropertiesUseCase struct {
	properties port.PropertyStoragePort
	owners     port.OwnerStoragePort
}

func NewGetOwnerPropertiesUseCase(properties port.PropertyStoragePort, owners port.OwnerStoragePort) *GetOwnerPropertiesUseCase {
	return &GetOwnerPropertiesUseCase{properties: properties, owners: owners}
}

func (uc *GetOwnerPropertiesUseCase) Execute(ctx context.Context, ownerID string, page, pageSize int) (*domain.PagedResult[domain.PropertyListView], error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "GetOwnerProperties",
		"owner_id":  ownerID,
		"page":      page,
		"page_size": pageSize,
	})
	ucLogger.Debug("Use case started", nil)

	owner, err := uc.owners.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			ucLogger.Warn("Owner not found", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return nil, err
	}

	properties, total, err := uc.properties.FindByOwner(ctx, ownerID, page, pageSize, false)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	// Владелец уже разрешен, батч-запрос не нужен.
	owners := map[string]domain.Owner{owner.ID: *owner}
	views := domain.NewPropertyListViews(properties, owners)
	result := domain.NewPagedResult(views, page, pageSize, total)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Data),
	})
	return &result, nil
}
