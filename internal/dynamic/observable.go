package dynamic

import (
	"github.com/rs/zerolog"

	"github.com/noah-isme/bundle-pricing/internal/discount"
	"github.com/noah-isme/bundle-pricing/internal/events"
)

// Observable decorates a component and announces every policy swap on Bus.
type Observable struct {
	Component
	Bus    *events.Bus
	Logger *zerolog.Logger
}

// Observe wraps c so policy changes are published on bus. Only swaps made
// through the returned wrapper are published; calling SetPolicy on c directly
// changes the price silently, so callers should hold on to the wrapper alone.
func Observe(c Component, bus *events.Bus, logger *zerolog.Logger) *Observable {
	return &Observable{Component: c, Bus: bus, Logger: logger}
}

// SetPolicy swaps the wrapped component's policy, then publishes the new total.
// Subscriber failures are logged, never returned.
func (o *Observable) SetPolicy(p discount.Policy) {
	o.Component.SetPolicy(p)
	ev := events.NewPriceChanged(o.Name(), o.Policy(), o.TotalPrice())
	if err := o.Bus.Publish(ev); err != nil && o.Logger != nil {
		o.Logger.Warn().Err(err).
			Str("node", ev.Node).
			Str("discount", ev.Describe).
			Str("event_id", ev.ID.String()).
			Msg("price change subscriber failed")
	}
}
