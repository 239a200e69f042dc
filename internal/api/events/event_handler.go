package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/attendance/internal/entity"
	"github.com/samandr77/microservices/attendance/pkg/broker"
)

type Mailer interface {
	SendMessage(subject, message string, recipients []string) error
}

type Metrics interface {
	EmailSent()
}

// EventHandler delivers notification events from the broker.
type EventHandler struct {
	mailer  Mailer
	metrics Metrics
}

func NewEventHandler(mailer Mailer, metrics Metrics) *EventHandler {
	return &EventHandler{mailer: mailer, metrics: metrics}
}

func (h *EventHandler) SendNotification(ctx context.Context, msg kafka.Message) error {
	var event broker.NotificationEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	switch event.Type {
	case broker.MessageTypeEmail:
		if len(event.Recipients) == 0 {
			slog.WarnContext(ctx, "email event without recipients", "subject", event.Subject)
			return nil
		}

		err = h.mailer.SendMessage(event.Subject, event.Message, event.Recipients)
		if err != nil {
			return fmt.Errorf("send email: %w", err)
		}

		h.metrics.EmailSent()
	default:
		return fmt.Errorf("%w: %s", entity.ErrUnknownMessageType, event.Type)
	}

	return nil
}
