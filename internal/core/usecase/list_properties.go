package usecase

import (
	"context"

	"github.com/Wilmaryucuma7/real-estate-api/internal/contextkeys"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/port"
)

// ListPropertiesUseCase - выборка всех объектов без фильтра и пагинации.
// Оставлен для совместимости со старыми клиентами: запрос без параметров
// должен возвращать плоский список, как раньше.
type ListPropertiesUseCase struct {
	properties port.PropertyStoragePort
	owners     port.OwnerStoragePort
}

func NewListPropertiesUseCase(properties port.PropertyStoragePort, owners port.OwnerStoragePort) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{properties: properties, owners: owners}
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context) ([]domain.PropertyListView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListProperties"})
	ucLogger.Debug("Use case started", nil)

	// Пустой фильтр: предикат совпадает со всеми объектами,
	// страница размером со всю коллекцию.
	properties, err := uc.properties.FindPage(ctx, domain.PropertyFilter{}, 1, 0, false)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	owners, err := uc.owners.GetByIDs(ctx, domain.OwnerIDs(properties))
	if err != nil {
		ucLogger.Error("Owner batch lookup failed", err, nil)
		return nil, err
	}

	views := domain.NewPropertyListViews(properties, domain.OwnersByID(owners))

	ucLogger.Info("Use case finished successfully", port.Fields{"total": len(views)})
	return views, nil
}
