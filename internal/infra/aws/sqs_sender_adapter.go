package aws

import (
	"context"

	"todo-api/internal/domain/gateway/queue"
	"todo-api/pkg/sqs"
)

// SQSSenderAdapter adapts pkg/sqs.Sender to the domain queue ports
type SQSSenderAdapter struct {
	sqsSender *sqs.Sender
}

var (
	_ queue.Sender      = (*SQSSenderAdapter)(nil)
	_ queue.QueuePinger = (*SQSSenderAdapter)(nil)
)

func NewSQSSenderAdapter(sqsClient sqs.SQSClient) *SQSSenderAdapter {
	return &SQSSenderAdapter{
		sqsSender: sqs.NewSender(sqsClient),
	}
}

func (adapter *SQSSenderAdapter) SendMessage(ctx context.Context, queueName string, body any, attributes map[string]string) error {
	_, err := adapter.sqsSender.SendMessage(ctx, queueName, body, attributes)
	return err
}

func (adapter *SQSSenderAdapter) Ping(ctx context.Context, queueName string) error {
	return adapter.sqsSender.Ping(ctx, queueName)
}
