package usecase

import (
	"context"
	"errors"

	"github.com/Wilmaryucuma7/real-estate-api/internal/contextkeys"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/port"
)

// GetPropertyTracesUseCase - история сделок объекта по slug.
// История не встраивается в детальную карточку, чтобы объекты
// с длинной историей не раздували ответ.
type GetPropertyTracesUseCase struct {
	properties port.PropertyStoragePort
}

func NewGetPropertyTracesUseCase(properties port.PropertyStoragePort) *GetPropertyTracesUseCase {
	return &GetPropertyTracesUseCase{properties: properties}
}

func (uc *GetPropertyTracesUseCase) Execute(ctx context.Context, slug string) ([]domain.PropertyTraceView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetPropertyTraces", "slug": slug})
	ucLogger.Debug("Use case started", nil)

	property, err := uc.properties.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			ucLogger.Warn("Property not found by slug", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return nil, err
	}

	// Пустая история - нормальный результат.
	views := domain.NewPropertyTraceViews(property.Traces)

	ucLogger.Info("Use case finished successfully", port.Fields{"traces": len(views)})
	return views, nil
}
