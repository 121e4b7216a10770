package fulfillment

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/kafka"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/models"
)

// KafkaEvents publishes order events for the notifier to pick up. One
// writer per topic, keyed by order id so per-order ordering holds.
type KafkaEvents struct {
	created  *kafkago.Writer
	updated  *kafkago.Writer
	reminder *kafkago.Writer
}

func NewKafkaEvents(brokers []string) *KafkaEvents {
	return &KafkaEvents{
		created:  kafka.NewKafkaWriter(brokers, kafka.TopicOrderCreated),
		updated:  kafka.NewKafkaWriter(brokers, kafka.TopicOrderStatusUpdated),
		reminder: kafka.NewKafkaWriter(brokers, kafka.TopicOrderReminder),
	}
}

func (e *KafkaEvents) Close() {
	e.created.Close()
	e.updated.Close()
	e.reminder.Close()
}

func (e *KafkaEvents) OrderCreated(ctx context.Context, order *models.Order) error {
	return e.publish(ctx, e.created, order)
}

func (e *KafkaEvents) OrderStatusUpdated(ctx context.Context, order *models.Order) error {
	return e.publish(ctx, e.updated, order)
}

func (e *KafkaEvents) OrderReminder(ctx context.Context, order *models.Order) error {
	return e.publish(ctx, e.reminder, order)
}

func (e *KafkaEvents) publish(ctx context.Context, writer *kafkago.Writer, order *models.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return kafka.WriteMessage(ctx, writer, []byte(order.ID.Hex()), payload)
}
