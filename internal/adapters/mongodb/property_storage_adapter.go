package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

// PropertyStorageAdapter реализует PropertyStoragePort поверх
// коллекции Properties.
type PropertyStorageAdapter struct {
	collection *mongo.Collection
}

func NewPropertyStorageAdapter(db *mongo.Database) (*PropertyStorageAdapter, error) {
	if db == nil {
		return nil, fmt.Errorf("mongo.Database cannot be nil")
	}
	return &PropertyStorageAdapter{
		collection: db.Collection(propertiesCollection),
	}, nil
}

// Count считает общее число документов под предикатом. Выполняется
// независимо от выборки страницы: длина страницы ничего не говорит
// об общем количестве.
func (a *PropertyStorageAdapter) Count(ctx context.Context, filter domain.PropertyFilter) (int64, error) {
	predicate, err := buildPropertyPredicate(filter)
	if err != nil {
		return 0, err
	}

	total, err := a.collection.CountDocuments(ctx, predicate)
	if err != nil {
		return 0, translateError("count properties", err, domain.ErrPropertyNotFound)
	}
	return total, nil
}

// FindPage выбирает одно окно страницы. Перед skip/limit всегда
// применяется сортировка по _id: без стабильного ключа сортировки
// соседние страницы не гарантированно дизъюнктны при конкурентных
// вставках.
func (a *PropertyStorageAdapter) FindPage(ctx context.Context, filter domain.PropertyFilter, page, pageSize int, includeTraces bool) ([]domain.Property, error) {
	predicate, err := buildPropertyPredicate(filter)
	if err != nil {
		return nil, err
	}
	return a.findWindow(ctx, predicate, page, pageSize, includeTraces)
}

func (a *PropertyStorageAdapter) findWindow(ctx context.Context, predicate bson.M, page, pageSize int, includeTraces bool) ([]domain.Property, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if pageSize > 0 {
		opts.SetSkip(int64(page-1) * int64(pageSize))
		opts.SetLimit(int64(pageSize))
	}
	if !includeTraces {
		// Проекция: история сделок в списках не нужна,
		// выгружать ее - лишний трафик.
		opts.SetProjection(bson.M{"traces": 0})
	}

	cursor, err := a.collection.Find(ctx, predicate, opts)
	if err != nil {
		return nil, translateError("find properties", err, domain.ErrPropertyNotFound)
	}
	defer cursor.Close(ctx)

	properties := make([]domain.Property, 0)
	for cursor.Next(ctx) {
		var doc propertyDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode property document: %w", err)
		}
		property, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}
	if err := cursor.Err(); err != nil {
		return nil, translateError("iterate properties", err, domain.ErrPropertyNotFound)
	}
	return properties, nil
}

// GetByID ищет по первичному ключу. Синтаксически невалидный
// идентификатор - это тоже "не найдено", исключений он не порождает.
func (a *PropertyStorageAdapter) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPropertyNotFound
	}
	return a.findOne(ctx, bson.M{"_id": objID})
}

// GetBySlug ищет по уникальному slug (индекс обеспечивает O(log n)).
func (a *PropertyStorageAdapter) GetBySlug(ctx context.Context, slug string) (*domain.Property, error) {
	return a.findOne(ctx, bson.M{"slug": slug})
}

func (a *PropertyStorageAdapter) findOne(ctx context.Context, predicate bson.M) (*domain.Property, error) {
	var doc propertyDoc
	if err := a.collection.FindOne(ctx, predicate).Decode(&doc); err != nil {
		return nil, translateError("find property", err, domain.ErrPropertyNotFound)
	}
	property, err := doc.toDomain()
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// FindByOwner - тот же контракт пагинации, что и FindPage,
// но в пределах одного владельца.
func (a *PropertyStorageAdapter) FindByOwner(ctx context.Context, ownerID string, page, pageSize int, includeTraces bool) ([]domain.Property, int64, error) {
	predicate := bson.M{"ownerId": ownerID}

	total, err := a.collection.CountDocuments(ctx, predicate)
	if err != nil {
		return nil, 0, translateError("count owner properties", err, domain.ErrPropertyNotFound)
	}

	properties, err := a.findWindow(ctx, predicate, page, pageSize, includeTraces)
	if err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

// Save делает upsert по бизнес-ключу codeInternal. Конфликт уникального
// индекса slug транслируется в ErrSlugConflict, решение о повторе
// принимает вызывающий.
func (a *PropertyStorageAdapter) Save(ctx context.Context, property *domain.Property) error {
	doc, err := fromDomainProperty(property)
	if err != nil {
		return err
	}

	_, err = a.collection.ReplaceOne(
		ctx,
		bson.M{"codeInternal": doc.CodeInternal},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return translateError("save property", err, domain.ErrPropertyNotFound)
	}
	return nil
}
