package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/attendance/internal/api/events"
	"github.com/samandr77/microservices/attendance/internal/entity"
	"github.com/samandr77/microservices/attendance/pkg/metrics"
)

type sentMail struct {
	subject    string
	message    string
	recipients []string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendMessage(subject, message string, recipients []string) error {
	if m.err != nil {
		return m.err
	}

	m.sent = append(m.sent, sentMail{subject: subject, message: message, recipients: recipients})

	return nil
}

func TestEventHandler_SendNotification(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		mailErr  error
		wantErr  error
		wantSent int
	}{
		{
			name:     "email",
			value:    `{"type":"email","subject":"Leave request approved","message":"Enjoy","recipients":["a@company.com"]}`,
			wantSent: 1,
		},
		{
			name:  "no recipients",
			value: `{"type":"email","subject":"x","message":"y","recipients":[]}`,
		},
		{
			name:    "unknown type",
			value:   `{"type":"sms","subject":"x","message":"y","recipients":["+100"]}`,
			wantErr: entity.ErrUnknownMessageType,
		},
		{
			name:    "smtp failure",
			value:   `{"type":"email","subject":"x","message":"y","recipients":["a@company.com"]}`,
			mailErr: errors.New("dial tcp: refused"),
		},
		{
			name:  "garbage",
			value: `not json`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := metrics.New()
			mailer := &fakeMailer{err: tt.mailErr}
			h := events.NewEventHandler(mailer, m)

			err := h.SendNotification(context.Background(), kafka.Message{Value: []byte(tt.value)})

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.mailErr != nil || tt.name == "garbage":
				require.Error(t, err)
			default:
				require.NoError(t, err)
			}

			require.Len(t, mailer.sent, tt.wantSent)

			count, err := testutil.GatherAndCount(m.Registry, "attendance_emails_sent_total")
			require.NoError(t, err)
			require.Equal(t, 1, count)
		})
	}
}
