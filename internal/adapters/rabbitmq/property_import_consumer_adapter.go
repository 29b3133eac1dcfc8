package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"

	"github.com/Wilmaryucuma7/real-estate-api/internal/constants"
	"github.com/Wilmaryucuma7/real-estate-api/internal/contextkeys"
	"github.com/Wilmaryucuma7/real-estate-api/internal/contracts"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/port"
	usecases_port "github.com/Wilmaryucuma7/real-estate-api/internal/core/port/usecases_port"
)

// PropertyImportEventDTO - входящее событие импорта объекта недвижимости.
// Денежные значения передаются строками, чтобы не терять точность.
type PropertyImportEventDTO struct {
	Name         string                  `json:"name"`
	Address      string                  `json:"address"`
	Price        string                  `json:"price"`
	CodeInternal string                  `json:"codeInternal"`
	Year         int                     `json:"year"`
	OwnerID      string                  `json:"ownerId"`
	Images       []PropertyImageEventDTO `json:"images"`
	Traces       []PropertyTraceEventDTO `json:"traces"`
}

type PropertyImageEventDTO struct {
	File    string `json:"file"`
	Enabled bool   `json:"enabled"`
}

type PropertyTraceEventDTO struct {
	DateSale time.Time `json:"dateSale"`
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Tax      string    `json:"tax"`
}

// PropertyImportConsumerAdapter - входящий адаптер, который слушает очередь
// импорта и вызывает use case сохранения объекта
type PropertyImportConsumerAdapter struct {
	url     string
	useCase usecases_port.ImportPropertyUseCase
	logger  port.LoggerPort

	conn    *amqp.Connection
	channel *amqp.Channel
	done    chan struct{}
}

func NewPropertyImportConsumerAdapter(url string, useCase usecases_port.ImportPropertyUseCase, logger port.LoggerPort) *PropertyImportConsumerAdapter {
	return &PropertyImportConsumerAdapter{
		url:     url,
		useCase: useCase,
		logger:  logger.WithFields(port.Fields{"adapter_name": "PropertyImportConsumerAdapter"}),
		done:    make(chan struct{}),
	}
}

// Start реализует EventListenerPort: объявляет топологию и запускает
// прослушивание очереди. Блокируется до отмены контекста или закрытия канала.
func (a *PropertyImportConsumerAdapter) Start(ctx context.Context) error {
	conn, err := amqp.Dial(a.url)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	a.conn = conn

	channel, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	a.channel = channel

	if err := a.declareTopology(channel); err != nil {
		return err
	}

	// Обрабатываем сообщения по одному
	if err := channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	deliveries, err := channel.Consume(
		constants.QueuePropertyImport,
		"", // consumer tag генерирует брокер
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	a.logger.Info("Property import consumer started.", port.Fields{"queue": constants.QueuePropertyImport})

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-a.done:
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed by broker")
			}
			a.handleDelivery(d)
		}
	}
}

func (a *PropertyImportConsumerAdapter) declareTopology(channel *amqp.Channel) error {
	if err := channel.ExchangeDeclare(
		constants.ExchangeListing,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", constants.ExchangeListing, err)
	}

	if _, err := channel.QueueDeclare(
		constants.QueuePropertyImport,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", constants.QueuePropertyImport, err)
	}

	if err := channel.QueueBind(
		constants.QueuePropertyImport,
		constants.RoutingKeyPropertyImport,
		constants.ExchangeListing,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("failed to bind queue %s: %w", constants.QueuePropertyImport, err)
	}

	return nil
}

func (a *PropertyImportConsumerAdapter) handleDelivery(d amqp.Delivery) {
	traceID, _ := d.Headers["x-trace-id"].(string)
	if traceID == "" {
		traceID = uuid.New().String()
	}

	msgLogger := a.logger.WithFields(port.Fields{
		"trace_id":   traceID,
		"message_id": d.MessageId,
	})

	ctx := context.Background()
	ctx = contextkeys.ContextWithLogger(ctx, msgLogger)
	ctx = contextkeys.ContextWithTraceID(ctx, traceID)

	property, err := a.unmarshalProperty(d)
	if err != nil {
		// Невалидное сообщение повторной доставкой не лечится
		msgLogger.Error("Message failed validation. Rejecting.", err, nil)
		_ = d.Reject(false)
		return
	}

	if err := a.useCase.Execute(ctx, *property); err != nil {
		// Сбой хранилища - возвращаем сообщение в очередь, если это
		// первая доставка. Повторный сбой уходит в reject.
		msgLogger.Error("Failed to import property, message will be requeued once.", err, nil)
		_ = d.Nack(false, !d.Redelivered)
		return
	}

	_ = d.Ack(false)
}

// unmarshalProperty - разбор сообщения: схема, DTO, трансляция в домен
func (a *PropertyImportConsumerAdapter) unmarshalProperty(d amqp.Delivery) (*domain.Property, error) {
	eventType, _ := d.Headers["event-type"].(string)
	eventVersion, _ := d.Headers["event-version"].(string)
	if eventType == "" {
		eventType = constants.EventTypePropertyImport
	}
	if eventVersion == "" {
		eventVersion = constants.EventVersionPropertyImport
	}
	if err := contracts.ValidateEvent(eventType, eventVersion, d.Body); err != nil {
		return nil, err
	}

	var dto PropertyImportEventDTO
	if err := json.Unmarshal(d.Body, &dto); err != nil {
		return nil, fmt.Errorf("failed to unmarshal property import event DTO: %w", err)
	}

	return toDomainProperty(&dto)
}

func toDomainProperty(dto *PropertyImportEventDTO) (*domain.Property, error) {
	price, err := decimal.NewFromString(dto.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", dto.Price, err)
	}

	property := &domain.Property{
		Name:         dto.Name,
		Address:      dto.Address,
		Price:        price,
		CodeInternal: dto.CodeInternal,
		Year:         dto.Year,
		OwnerID:      dto.OwnerID,
	}

	for _, img := range dto.Images {
		property.Images = append(property.Images, domain.PropertyImage{
			ID:      uuid.NewString(),
			File:    img.File,
			Enabled: img.Enabled,
		})
	}

	for _, trace := range dto.Traces {
		value, err := decimal.NewFromString(trace.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid trace value %q: %w", trace.Value, err)
		}
		tax, err := decimal.NewFromString(trace.Tax)
		if err != nil {
			return nil, fmt.Errorf("invalid trace tax %q: %w", trace.Tax, err)
		}
		property.Traces = append(property.Traces, domain.PropertyTrace{
			ID:       uuid.NewString(),
			DateSale: trace.DateSale,
			Name:     trace.Name,
			Value:    value,
			Tax:      tax,
		})
	}

	return property, nil
}

// Close реализует EventListenerPort, корректно останавливая консьюмера
func (a *PropertyImportConsumerAdapter) Close() error {
	close(a.done)
	if a.channel != nil {
		_ = a.channel.Close()
	}
	if a.conn != nil {
		return a.conn.Close()
	}
	return nil
}
