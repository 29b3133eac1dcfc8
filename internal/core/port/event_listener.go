package port

import "context"

// EventListenerPort - входящий адаптер, который слушает внешние события
// (например, очередь импорта) и вызывает ядро.
type EventListenerPort interface {
	// Start блокируется до отмены контекста или фатальной ошибки.
	Start(ctx context.Context) error
	Close() error
}
