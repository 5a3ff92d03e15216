package events

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"restoflow/entity"
)

// Publisher emits an event for every persisted order. Downstream
// consumers (reporting, accounting exports) read the topic; the POS
// flow itself never depends on delivery.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, o *entity.Order) error
}

type OrderPlaced struct {
	Code         string `json:"code"`
	RestaurantID uint   `json:"restaurantId"`
	Total        string `json:"total"`
	PlacedAt     string `json:"placedAt"`
}

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(broker, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		Writer: &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *KafkaPublisher) PublishOrderPlaced(ctx context.Context, o *entity.Order) error {
	payload, err := json.Marshal(OrderPlaced{
		Code:         o.Code,
		RestaurantID: o.RestaurantID,
		Total:        o.Total.StringFixed(2),
		PlacedAt:     o.PlacedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(o.RestaurantID), 10)),
		Value: payload,
	})
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderPlaced(context.Context, *entity.Order) error { return nil }
