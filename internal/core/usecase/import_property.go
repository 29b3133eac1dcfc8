package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Wilmaryucuma7/real-estate-api/internal/contextkeys"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/port"
	"github.com/Wilmaryucuma7/real-estate-api/pkg/slugify"
)

// ImportPropertyUseCase - сохранение объекта, пришедшего из очереди импорта.
// Назначает slug из названия; при коллизии уникального индекса делает
// одну повторную попытку с коротким суффиксом.
type ImportPropertyUseCase struct {
	properties port.PropertyStoragePort
}

func NewImportPropertyUseCase(properties port.PropertyStoragePort) *ImportPropertyUseCase {
	return &ImportPropertyUseCase{properties: properties}
}

func (uc *ImportPropertyUseCase) Execute(ctx context.Context, property domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":      "ImportProperty",
		"code_internal": property.CodeInternal,
	})
	ucLogger.Debug("Use case started", nil)

	// Slug назначается один раз при импорте и дальше не меняется.
	if property.Slug == "" {
		property.Slug = slugify.Make(property.Name)
	}
	if property.Slug == "" {
		return fmt.Errorf("cannot derive slug from property name %q", property.Name)
	}

	err := uc.properties.Save(ctx, &property)
	if errors.Is(err, domain.ErrSlugConflict) {
		// Имя не уникально - доклеиваем короткий суффикс и пробуем еще раз.
		property.Slug = fmt.Sprintf("%s-%s", property.Slug, uuid.NewString()[:8])
		ucLogger.Warn("Slug already taken, retrying with suffix", port.Fields{"slug": property.Slug})
		err = uc.properties.Save(ctx, &property)
	}
	if err != nil {
		ucLogger.Error("Failed to save imported property", err, nil)
		return err
	}

	ucLogger.Info("Property imported", port.Fields{"slug": property.Slug})
	return nil
}
