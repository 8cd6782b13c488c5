package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"todo-api/pkg/resource"
)

// NewSqsClient creates an SQS client, pointed at app.cloud.aws-endpoint when set (LocalStack).
func NewSqsClient(cfg aws.Config) *sqs.Client {
	endpoint := resource.GetString("app.cloud.aws-endpoint")

	return sqs.NewFromConfig(cfg, func(options *sqs.Options) {
		if endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
		}
	})
}
