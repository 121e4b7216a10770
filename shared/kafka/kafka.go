package kafka

import (
	"context"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	TopicOrderCreated       = "order-created"
	TopicOrderStatusUpdated = "order-status-updated"
	TopicOrderReminder      = "order-reminder"
)

// NewKafkaWriter creates a new kafka writer with minimal required configuration
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
}

// NewKafkaReader creates a new Kafka reader with minimal required configuration
func NewKafkaReader(brokers []string, topic string, groupId string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupId,
	})
}

// WriteMessage writes a message with the provided key and value to Kafka.
// Messages with the same key land on the same partition, so per-order
// ordering is preserved when the order id is used as the key.
func WriteMessage(ctx context.Context, writer *kafka.Writer, key []byte, value []byte) error {
	message := kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	}

	err := writer.WriteMessages(ctx, message)
	if err != nil {
		log.Printf("failed to write message to kafka: %v", err)
		return err
	}
	return nil
}
