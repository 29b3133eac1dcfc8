package usecase

import (
	"context"

	"github.com/Wilmaryucuma7/real-estate-api/internal/contextkeys"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/port"
)

// ListOwnersUseCase - страница владельцев.
type ListOwnersUseCase struct {
	owners port.OwnerStoragePort
}

func NewListOwnersUseCase(owners port.OwnerStoragePort) *ListOwnersUseCase {
	return &ListOwnersUseCase{owners: owners}
}

func (uc *ListOwnersUseCase) Execute(ctx context.Context, page, pageSize int) (*domain.PagedResult[domain.OwnerView], error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListOwners", "page": page, "page_size": pageSize})
	ucLogger.Debug("Use case started", nil)

	owners, total, err := uc.owners.FindPage(ctx, page, pageSize)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	views := make([]domain.OwnerView, len(owners))
	for i, o := range owners {
		views[i] = domain.NewOwnerView(o)
	}
	result := domain.NewPagedResult(views, page, pageSize, total)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Data),
	})
	return &result, nil
}
