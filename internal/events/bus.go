package events

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/bundle-pricing/internal/discount"
)

// ErrNodeRequired is returned by Validate when the event names no node.
var ErrNodeRequired = errors.New("events: node name is required")

// PriceChanged is published after a node's discount policy is replaced.
type PriceChanged struct {
	ID         uuid.UUID
	Node       string
	Policy     string
	Kind       discount.Kind
	// Describe is the policy with its parameter, e.g. "Fixed Discount (fixed:3000)".
	Describe   string
	Total      float64
	OccurredAt time.Time
}

// NewPriceChanged stamps a change for node with a fresh id and the current time.
func NewPriceChanged(node string, policy discount.Policy, total float64) PriceChanged {
	ev := PriceChanged{
		ID:         uuid.New(),
		Node:       node,
		Total:      total,
		OccurredAt: time.Now().UTC(),
	}
	if policy != nil {
		ev.Policy = policy.Name()
		ev.Kind = policy.Kind()
		ev.Describe = discount.Describe(policy)
	}
	return ev
}

// Validate checks the event carries enough data to be delivered.
func (e PriceChanged) Validate() error {
	if strings.TrimSpace(e.Node) == "" {
		return ErrNodeRequired
	}
	return nil
}

// Subscriber reacts to price changes (logging, metrics, etc.).
type Subscriber interface {
	OnPriceChanged(ev PriceChanged) error
}

// SubscriberFunc adapts a plain function to Subscriber.
type SubscriberFunc func(ev PriceChanged) error

// OnPriceChanged calls f.
func (f SubscriberFunc) OnPriceChanged(ev PriceChanged) error {
	return f(ev)
}

// Bus fans price changes out to subscribers in subscription order.
// It is not safe for concurrent use.
type Bus struct {
	Subscribers []Subscriber
}

// Subscribe appends s to the delivery list.
func (b *Bus) Subscribe(s Subscriber) {
	if s == nil {
		return
	}
	b.Subscribers = append(b.Subscribers, s)
}

// Publish delivers ev synchronously to every subscriber. A failing subscriber
// does not stop delivery to the rest; all failures are joined.
func (b *Bus) Publish(ev PriceChanged) error {
	if b == nil {
		return nil
	}
	if err := ev.Validate(); err != nil {
		return err
	}
	var joined error
	for i, sub := range b.Subscribers {
		if sub == nil {
			continue
		}
		if err := sub.OnPriceChanged(ev); err != nil {
			joined = errors.Join(joined, fmt.Errorf("events: subscriber %d: %w", i, err))
		}
	}
	return joined
}
