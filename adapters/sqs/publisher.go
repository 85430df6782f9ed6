// Package sqsevents publishes roster-change events to AWS SQS for external
// consumers (notification tooling, attendance exports).
package sqsevents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/mergington-hs/activities/events"
)

// Ensure Publisher implements events.Publisher
var _ events.Publisher = (*Publisher)(nil)

// Publisher implements events.Publisher backed by AWS SQS.
type Publisher struct {
	client *sqs.Client
	cfg    Config
}

// New constructs an SQS-backed publisher using the default AWS config chain.
func New(ctx context.Context, cfg Config) (*Publisher, error) {
	if cfg.QueueURL == "" {
		return nil, fmt.Errorf("QueueURL is required")
	}
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awscfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return NewFromClient(sqs.NewFromConfig(awscfg), cfg), nil
}

// NewFromClient constructs the publisher from an existing SQS client.
func NewFromClient(client *sqs.Client, cfg Config) *Publisher {
	return &Publisher{client: client, cfg: cfg}
}

// Publish sends one roster event as an SQS message.
func (p *Publisher) Publish(ctx context.Context, e *events.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msgAttributes := map[string]sqstypes.MessageAttributeValue{
		"Activity": {
			DataType:    aws.String("String"),
			StringValue: aws.String(e.Activity),
		},
		"EventType": {
			DataType:    aws.String("String"),
			StringValue: aws.String(string(e.Type)),
		},
	}
	input := &sqs.SendMessageInput{
		QueueUrl:          aws.String(p.cfg.QueueURL),
		MessageBody:       aws.String(string(body)),
		MessageAttributes: msgAttributes,
	}
	if p.cfg.FIFO {
		groupID := p.cfg.MessageGroupID
		if groupID == "" {
			groupID = e.Activity
		}
		input.MessageGroupId = aws.String(groupID)
		// Deduplication window is 5 minutes for FIFO standard dedup
		input.MessageDeduplicationId = aws.String(e.ID)
	}
	if _, err := p.client.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("sqs SendMessage: %w", err)
	}
	return nil
}

// Close implements events.Publisher; the SQS client holds no resources.
func (p *Publisher) Close() error {
	return nil
}
