package order_created

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/entities"
	orderservice "github.com/navneet-limitinfinity/haul-riders-sub000/internal/service/order"
	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/logger"
)

// createdEvent — событие регистрации заказа из витрины магазина.
type createdEvent struct {
	StoreID     string  `json:"store_ID"`
	OrderNumber string  `json:"order_number"`
	CourierType string  `json:"courier_type"`
	WeightKg    float64 `json:"weight_kg"`
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
		logger.NewField("store", event.StoreID),
		logger.NewField("order_number", event.OrderNumber),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.created processing")

	orderCreate := entities.OrderCreate{
		StoreID:     event.StoreID,
		OrderNumber: event.OrderNumber,
		CourierType: event.CourierType,
		WeightKg:    event.WeightKg,
	}

	orderEntity, err := h.orderService.CreateOrder(ctx, orderCreate)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.created handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrOrderAlreadyExists):
			// повторная доставка того же события — штатно, offset двигаем
			msgLog.Warn("order.created handler duplicate order event")

		case errors.Is(err, orderservice.ErrMissingRequiredFields):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.created handler event missing required fields")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.created handler failed to create order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("doc_id", orderEntity.DocID),
		logger.NewField("store", orderEntity.StoreID),
		logger.NewField("status", orderEntity.Shipment.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("order.created: processed")

	sess.MarkMessage(message, "")
	return false
}
