package broker

const MessageTypeEmail = "email"

// NotificationEvent is the payload written to the notification topic.
type NotificationEvent struct {
	Type       string   `json:"type"`
	Subject    string   `json:"subject"`
	Message    string   `json:"message"`
	Recipients []string `json:"recipients"`
}
