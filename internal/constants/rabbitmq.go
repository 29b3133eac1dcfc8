package constants

// Имена обменника и очередей
const (
	ExchangeListing = "listing_exchange"

	QueuePropertyImport = "property_import"
)

// Ключи маршрутизации
const (
	RoutingKeyPropertyImport = "property.import"
)

// Типы событий (заголовки сообщений)
const (
	EventTypePropertyImport    = "PropertyImportEvent"
	EventVersionPropertyImport = "1.0.0"
)
