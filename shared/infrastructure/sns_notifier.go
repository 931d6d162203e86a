package infrastructure

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/pkg/errors"
)

// SNSNotifier publishes booking outcome messages to an SNS topic. Delivery
// is fire-and-forget from the saga's point of view: the orchestrator logs
// and ignores publish failures on the success path.
type SNSNotifier struct {
	client   *sns.Client
	topicArn string
}

// NewSNSNotifier creates a new SNSNotifier
func NewSNSNotifier(client *sns.Client, topicArn string) *SNSNotifier {
	return &SNSNotifier{
		client:   client,
		topicArn: topicArn,
	}
}

// NewSNSNotifierFromEnv creates an SNSNotifier with the default AWS config
// (works with LocalStack when AWS_ENDPOINT_URL is set)
func NewSNSNotifierFromEnv(ctx context.Context, topicArn string) (*SNSNotifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}
	return NewSNSNotifier(sns.NewFromConfig(cfg), topicArn), nil
}

// Publish publishes a plain notification message
func (n *SNSNotifier) Publish(ctx context.Context, message string) error {
	_, err := n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicArn),
		Message:  aws.String(message),
	})
	if err != nil {
		return errors.Wrap(err, "failed to publish notification to SNS")
	}
	return nil
}
