package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/port"
)

// DatabaseInitializer проверяет и готовит базу при старте сервиса:
// индексы, наличие данных. Сами данные он не сеет - наполнение
// коллекций принадлежит внешнему процессу импорта.
type DatabaseInitializer struct {
	db     *mongo.Database
	logger port.LoggerPort
}

func NewDatabaseInitializer(db *mongo.Database, logger port.LoggerPort) (*DatabaseInitializer, error) {
	if db == nil {
		return nil, fmt.Errorf("mongo.Database cannot be nil")
	}
	return &DatabaseInitializer{db: db, logger: logger}, nil
}

// Initialize создает индексы и логирует предупреждение, если коллекции
// пустые (оператору нужно запустить сид-скрипт или импорт).
func (i *DatabaseInitializer) Initialize(ctx context.Context) error {
	properties := i.db.Collection(propertiesCollection)
	owners := i.db.Collection(ownersCollection)

	// Уникальный индекс по slug - альтернативный ключ поиска,
	// индекс по ownerId - для страниц "объекты владельца".
	_, err := properties.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "ownerId", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "codeInternal", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create property indexes: %w", err)
	}

	propertiesCount, err := properties.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count properties: %w", err)
	}
	ownersCount, err := owners.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count owners: %w", err)
	}

	if propertiesCount == 0 || ownersCount == 0 {
		i.logger.Warn("Collections exist but are empty, run the seed script or the import pipeline", port.Fields{
			"properties": propertiesCount,
			"owners":     ownersCount,
		})
	} else {
		i.logger.Info("Database validation successful", port.Fields{
			"properties": propertiesCount,
			"owners":     ownersCount,
		})
	}

	return nil
}

// Ping реализует StorageHealthPort для health-check эндпоинта.
func (i *DatabaseInitializer) Ping(ctx context.Context) error {
	return i.db.Client().Ping(ctx, readpref.Primary())
}
