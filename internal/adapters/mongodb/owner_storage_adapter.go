package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

// OwnerStorageAdapter реализует OwnerStoragePort поверх коллекции Owners.
type OwnerStorageAdapter struct {
	collection *mongo.Collection
}

func NewOwnerStorageAdapter(db *mongo.Database) (*OwnerStorageAdapter, error) {
	if db == nil {
		return nil, fmt.Errorf("mongo.Database cannot be nil")
	}
	return &OwnerStorageAdapter{
		collection: db.Collection(ownersCollection),
	}, nil
}

func (a *OwnerStorageAdapter) GetByID(ctx context.Context, id string) (*domain.Owner, error) {
	var doc ownerDoc
	if err := a.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, translateError("find owner", err, domain.ErrOwnerNotFound)
	}
	owner := doc.toDomain()
	return &owner, nil
}

// GetByIDs разрешает весь набор одним $in-запросом. Дубликаты на входе
// схлопываются до запроса, поэтому на выходе каждый владелец один раз.
func (a *OwnerStorageAdapter) GetByIDs(ctx context.Context, ids []string) ([]domain.Owner, error) {
	unique := dedupeIDs(ids)
	if len(unique) == 0 {
		return []domain.Owner{}, nil
	}

	cursor, err := a.collection.Find(ctx, bson.M{"_id": bson.M{"$in": unique}})
	if err != nil {
		return nil, translateError("find owners", err, domain.ErrOwnerNotFound)
	}
	defer cursor.Close(ctx)

	owners := make([]domain.Owner, 0, len(unique))
	for cursor.Next(ctx) {
		var doc ownerDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode owner document: %w", err)
		}
		owners = append(owners, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, translateError("iterate owners", err, domain.ErrOwnerNotFound)
	}
	return owners, nil
}

func (a *OwnerStorageAdapter) FindPage(ctx context.Context, page, pageSize int) ([]domain.Owner, int64, error) {
	total, err := a.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, translateError("count owners", err, domain.ErrOwnerNotFound)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(page-1) * int64(pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := a.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, translateError("find owners page", err, domain.ErrOwnerNotFound)
	}
	defer cursor.Close(ctx)

	owners := make([]domain.Owner, 0, pageSize)
	for cursor.Next(ctx) {
		var doc ownerDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode owner document: %w", err)
		}
		owners = append(owners, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, translateError("iterate owners page", err, domain.ErrOwnerNotFound)
	}
	return owners, total, nil
}

// dedupeIDs убирает дубликаты, сохраняя порядок первого вхождения.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
