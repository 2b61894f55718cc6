// Package kafka publishes shipment status notifications to a Kafka topic.
// The communications collaborator consumes the topic and renders the actual
// email/SMS templates; this adapter only emits the payload.
package kafka

import (
	"context"
	"encoding/json"

	"shiptrack/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Writer is the subset of kafka.Writer this adapter needs.
// Injecting it keeps the notifier testable without a broker.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// statusNotificationMessage is the wire payload published per notification.
type statusNotificationMessage struct {
	ShipmentID     string  `json:"shipment_id"`
	Status         string  `json:"status"`
	Description    string  `json:"description"`
	RecipientEmail string  `json:"recipient_email"`
	RecipientPhone *string `json:"recipient_phone,omitempty"`
	SellerName     string  `json:"seller_name"`
	PartnerName    string  `json:"partner_name"`
}

// StatusNotifier implements ports.Notifier over a Kafka topic.
// Messages are keyed by shipment id so all notifications for one shipment
// land on the same partition, preserving their order for consumers.
type StatusNotifier struct {
	writer Writer
}

// NewStatusNotifier creates a notifier publishing to the given broker and topic.
func NewStatusNotifier(brokerURL, topic string) *StatusNotifier {
	return &StatusNotifier{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokerURL),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// NewStatusNotifierWithWriter creates a notifier over an injected writer.
func NewStatusNotifierWithWriter(writer Writer) *StatusNotifier {
	return &StatusNotifier{writer: writer}
}

// NotifyStatusChange publishes one notification message.
// Delivery outcome handling is the consumer's concern; the caller already
// treats notification failures as non-fatal.
func (n *StatusNotifier) NotifyStatusChange(ctx context.Context, notification ports.StatusNotification) error {
	payload, err := json.Marshal(statusNotificationMessage{
		ShipmentID:     notification.ShipmentID.String(),
		Status:         notification.Status.String(),
		Description:    notification.Description,
		RecipientEmail: notification.RecipientEmail,
		RecipientPhone: notification.RecipientPhone,
		SellerName:     notification.SellerName,
		PartnerName:    notification.PartnerName,
	})
	if err != nil {
		return err
	}

	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(notification.ShipmentID.String()),
		Value: payload,
	})
}

// Close shuts down the underlying writer.
func (n *StatusNotifier) Close() error {
	return n.writer.Close()
}
