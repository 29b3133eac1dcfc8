package usecase

import (
	"context"

	"github.com/Wilmaryucuma7/real-estate-api/internal/contextkeys"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/port"
)

// FindPropertiesUseCase - поиск объектов по критериям с пагинацией.
type FindPropertiesUseCase struct {
	properties port.PropertyStoragePort
	owners     port.OwnerStoragePort
}

func NewFindPropertiesUseCase(properties port.PropertyStoragePort, owners port.OwnerStoragePort) *FindPropertiesUseCase {
	return &FindPropertiesUseCase{properties: properties, owners: owners}
}

type countResult struct {
	total int64
	err   error
}

func (uc *FindPropertiesUseCase) Execute(ctx context.Context, filter domain.PropertyFilter) (*domain.PagedResult[domain.PropertyListView], error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "FindProperties"})

	// Валидация до какого-либо обращения к хранилищу.
	if err := filter.Validate(); err != nil {
		ucLogger.Warn("Filter validation failed", port.Fields{"validation_error": err.Error()})
		return nil, err
	}

	page, pageSize := filter.Normalize()
	ucLogger = ucLogger.WithFields(port.Fields{"page": page, "page_size": pageSize})
	ucLogger.Debug("Use case started", nil)

	// Count и выборка страницы не зависят друг от друга,
	// поэтому выполняются параллельно. Снапшот-изоляции между ними нет:
	// метаданные пагинации best-effort при конкурентных вставках.
	countCh := make(chan countResult, 1)
	go func() {
		total, err := uc.properties.Count(ctx, filter)
		countCh <- countResult{total: total, err: err}
	}()

	properties, err := uc.properties.FindPage(ctx, filter, page, pageSize, false)
	if err != nil {
		<-countCh
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	count := <-countCh
	if count.err != nil {
		ucLogger.Error("Count query failed", count.err, nil)
		return nil, count.err
	}

	// Владельцы страницы - одним батч-запросом, без N+1.
	owners, err := uc.owners.GetByIDs(ctx, domain.OwnerIDs(properties))
	if err != nil {
		ucLogger.Error("Owner batch lookup failed", err, nil)
		return nil, err
	}

	views := domain.NewPropertyListViews(properties, domain.OwnersByID(owners))
	result := domain.NewPagedResult(views, page, pageSize, count.total)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Data),
	})

	return &result, nil
}
