package order_created

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"slasty/internal/entities"
	orderservice "slasty/internal/service/order"
	"slasty/pkg/logger"
)

// createdEvent это событие о новом заказе из внешней системы приема.
type createdEvent struct {
	OrderID       int64    `json:"order_id"`
	Weight        float64  `json:"weight"`
	Region        int64    `json:"region"`
	DeliveryHours []string `json:"delivery_hours"`
}

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("order.created: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order.created: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event createdEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.created handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("region", event.Region),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.created processing")

	orderCreate := entities.OrderCreate{
		ID:            event.OrderID,
		Weight:        event.Weight,
		Region:        event.Region,
		DeliveryHours: event.DeliveryHours,
	}

	ids, err := h.orderService.CreateOrders(ctx, []entities.OrderCreate{orderCreate})
	if err != nil {
		var validationErr *orderservice.ValidationError

		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.created handler context cancelled, message will be reprocessed")
			return true

		case errors.As(err, &validationErr):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.created handler invalid order payload")

		case errors.Is(err, orderservice.ErrOrderExists):
			// Повторная доставка события, заказ уже принят
			msgLog.Warn("order.created handler order already exists")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.created handler failed to create order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("created", ids),
	).Info("order.created: processed")

	sess.MarkMessage(message, "")
	return false
}
