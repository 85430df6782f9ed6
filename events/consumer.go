package events

import (
	"context"

	"go.uber.org/zap"
)

// Consumer drains a subscription and logs each roster change. It is the
// default local consumer wired up when the in-memory publisher is used.
type Consumer struct {
	log *zap.Logger
}

// NewConsumer creates a consumer logging through the given logger.
func NewConsumer(log *zap.Logger) *Consumer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Consumer{log: log}
}

// Run processes events until the channel closes or the context ends.
func (c *Consumer) Run(ctx context.Context, ch <-chan *Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-ch:
			if !ok {
				return
			}
			c.log.Info("roster change",
				zap.String("event_id", e.ID),
				zap.String("type", string(e.Type)),
				zap.String("activity", e.Activity),
				zap.String("email", e.Email),
			)
		}
	}
}
