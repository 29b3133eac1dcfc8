package port

import "context"

// StorageHealthPort - проверка доступности хранилища для health-check.
type StorageHealthPort interface {
	Ping(ctx context.Context) error
}
