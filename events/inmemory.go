package events

import (
	"context"
	"fmt"
	"sync"
)

// subscriberBuffer is the per-subscriber channel capacity. A slow consumer
// drops events rather than blocking signup requests.
const subscriberBuffer = 100

// InMemoryPublisher is a channel-based fan-out implementation of Publisher
// and Subscriber.
type InMemoryPublisher struct {
	mu     sync.RWMutex
	subs   map[int]chan *Event
	nextID int
	closed bool
}

// NewInMemoryPublisher creates a new in-memory publisher
func NewInMemoryPublisher() *InMemoryPublisher {
	return &InMemoryPublisher{
		subs: make(map[int]chan *Event),
	}
}

// Publish implements Publisher
func (p *InMemoryPublisher) Publish(ctx context.Context, e *Event) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return fmt.Errorf("publisher is closed")
	}

	for _, ch := range p.subs {
		select {
		case ch <- e:
		default:
			// subscriber buffer full; drop rather than block the request
		}
	}
	return nil
}

// Subscribe implements Subscriber. The cancel func removes the subscription
// and closes its channel.
func (p *InMemoryPublisher) Subscribe() (<-chan *Event, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	ch := make(chan *Event, subscriberBuffer)
	if p.closed {
		close(ch)
		return ch, func() {}
	}
	p.subs[id] = ch

	cancel := func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if sub, ok := p.subs[id]; ok {
			delete(p.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Close implements Publisher. All subscription channels are closed.
func (p *InMemoryPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	for id, ch := range p.subs {
		delete(p.subs, id)
		close(ch)
	}
	return nil
}
