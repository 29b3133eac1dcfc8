package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

// translateError переводит ошибки драйвера в доменные на границе адаптера.
// Ядро и REST-слой про mongo-driver знать не должны.
//
// notFound - какой доменный сентинел отдавать вместо ErrNoDocuments
// (у объектов и владельцев они разные).
func translateError(op string, err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return notFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, domain.ErrSlugConflict)
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err), mongo.IsNetworkError(err):
		// Недоступность хранилища не ретраится, отдается наверх как есть.
		return fmt.Errorf("%s: %v: %w", op, err, domain.ErrStorageUnavailable)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
