package queue

import "context"

type Sender interface {
	// SendMessage publishes body as JSON to queueName with optional string attributes
	SendMessage(ctx context.Context, queueName string, body any, attributes map[string]string) error
}

// NoopSender drops every message. It is used when publishing is disabled.
type NoopSender struct{}

var _ Sender = NoopSender{}

func (NoopSender) SendMessage(context.Context, string, any, map[string]string) error {
	return nil
}
