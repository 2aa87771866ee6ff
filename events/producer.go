package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Natanjhon7/delivery-backend-v2/models"
)

// OrderCreatedEvent is published after an order is committed. Consumers such
// as a notification pipeline see snapshots, never live references.
type OrderCreatedEvent struct {
	Event     string             `json:"event"` // "order.created"
	OrderID   string             `json:"order_id"`
	UserID    string             `json:"user_id"`
	Total     float64            `json:"total"`
	Items     []models.OrderItem `json:"items"`
	Timestamp time.Time          `json:"timestamp"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(brokers, ",")...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &Producer{writer: writer}
}

func (p *Producer) OrderCreated(ctx context.Context, order *models.Order) error {
	event := OrderCreatedEvent{
		Event:     "order.created",
		OrderID:   order.ID.String(),
		UserID:    order.UserID.String(),
		Total:     order.Total,
		Items:     order.Items,
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.UserID.String()),
		Value: data,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
