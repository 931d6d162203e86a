package infrastructure

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/voyago/booking-system/shared/events"
	"github.com/voyago/booking-system/shared/models"
)

const (
	SQSMessageIDKey     = "sqs_message_id"
	SQSReceiptHandleKey = "sqs_receipt_handle"
)

type sqsSubscriberOptions struct {
	workers             int
	maxNumberOfMessages int32
	waitTimeSeconds     int32
	visibilityTimeout   int32
	sleepTimeAfterError time.Duration
}

// SQSSubscriberOption configures the subscriber
type SQSSubscriberOption func(*sqsSubscriberOptions)

func WithWorkers(workers int) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.workers = workers
	}
}

func WithVisibilityTimeout(timeout int32) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.visibilityTimeout = timeout
	}
}

func WithWaitTimeSeconds(seconds int32) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.waitTimeSeconds = seconds
	}
}

// SQSEventSubscriber consumes booking events from an SQS queue and hands
// them to an EventHandler. Messages are deleted only after the handler
// succeeds, so failed messages come back after the visibility timeout.
type SQSEventSubscriber struct {
	client   *sqs.Client
	queueURL string
	handler  events.EventHandler
	options  *sqsSubscriberOptions
	logger   *logrus.Entry
}

// NewSQSEventSubscriber creates a new SQS event subscriber
func NewSQSEventSubscriber(client *sqs.Client, queueURL string, handler events.EventHandler, opts ...SQSSubscriberOption) *SQSEventSubscriber {
	options := &sqsSubscriberOptions{
		workers:             5,
		maxNumberOfMessages: 5,
		waitTimeSeconds:     15,
		visibilityTimeout:   60,
		sleepTimeAfterError: time.Second,
	}
	for _, opt := range opts {
		opt(options)
	}

	return &SQSEventSubscriber{
		client:   client,
		queueURL: queueURL,
		handler:  handler,
		options:  options,
		logger:   logrus.WithField("queue_url", queueURL),
	}
}

// NewSQSEventSubscriberFromEnv creates a subscriber with the default AWS
// config (works with LocalStack when AWS_ENDPOINT_URL is set)
func NewSQSEventSubscriberFromEnv(ctx context.Context, queueURL string, handler events.EventHandler, opts ...SQSSubscriberOption) (*SQSEventSubscriber, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}
	return NewSQSEventSubscriber(sqs.NewFromConfig(cfg), queueURL, handler, opts...), nil
}

// Run receives messages until ctx is cancelled
func (s *SQSEventSubscriber) Run(ctx context.Context) error {
	messages := make(chan types.Message)

	gr, ctx := errgroup.WithContext(ctx)

	gr.Go(func() error {
		defer close(messages)
		return s.receiveLoop(ctx, messages)
	})

	for i := 0; i < s.options.workers; i++ {
		gr.Go(func() error {
			for msg := range messages {
				s.handleMessage(ctx, msg)
			}
			return nil
		})
	}

	return gr.Wait()
}

func (s *SQSEventSubscriber) receiveLoop(ctx context.Context, messages chan<- types.Message) error {
	for {
		out, err := s.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(s.queueURL),
			MaxNumberOfMessages: s.options.maxNumberOfMessages,
			WaitTimeSeconds:     s.options.waitTimeSeconds,
			VisibilityTimeout:   s.options.visibilityTimeout,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.logger.WithError(err).Error("failed to receive messages")
			select {
			case <-time.After(s.options.sleepTimeAfterError):
			case <-ctx.Done():
				return nil
			}
			continue
		}

		for _, msg := range out.Messages {
			select {
			case messages <- msg:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func (s *SQSEventSubscriber) handleMessage(ctx context.Context, msg types.Message) {
	event, err := decodeSQSMessage(msg)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode message, dropping")
		s.deleteMessage(ctx, msg)
		return
	}

	if err := s.handler.Handle(ctx, event); err != nil {
		// Leave the message for redelivery after the visibility timeout.
		s.logger.WithError(err).WithField("event_type", event.EventType).
			Error("handler failed, message will be redelivered")
		return
	}

	s.deleteMessage(ctx, msg)
}

func (s *SQSEventSubscriber) deleteMessage(ctx context.Context, msg types.Message) {
	_, err := s.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(s.queueURL),
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		s.logger.WithError(err).Error("failed to delete message")
	}
}

// snsEnvelope is the wrapper SNS adds when a topic fans out to SQS
type snsEnvelope struct {
	Type    string `json:"Type"`
	Message string `json:"Message"`
}

func decodeSQSMessage(msg types.Message) (*events.Event, error) {
	if msg.Body == nil {
		return nil, errors.New("message has no body")
	}

	body := []byte(*msg.Body)
	var envelope snsEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Type == "Notification" {
		body = []byte(envelope.Message)
	}

	var message snsMessage
	if err := json.Unmarshal(body, &message); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal message")
	}

	event := &events.Event{
		EventType: message.EventType,
		Data:      message.Payload,
		Metadata:  message.Metadata,
		Timestamp: message.Timestamp,
	}
	if event.Metadata == nil {
		event.Metadata = make(events.Metadata)
	}
	if msg.MessageId != nil {
		event.Metadata[SQSMessageIDKey] = *msg.MessageId
	}
	if msg.ReceiptHandle != nil {
		event.Metadata[SQSReceiptHandleKey] = *msg.ReceiptHandle
	}
	if message.ID != "" {
		event.ID = models.ID(message.ID)
	}

	return event, nil
}
