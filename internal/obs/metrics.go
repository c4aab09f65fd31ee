package obs

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/noah-isme/bundle-pricing/internal/discount"
	"github.com/noah-isme/bundle-pricing/internal/events"
)

// Variant labels used on pricing metrics.
const (
	VariantDynamic = "dynamic"
	VariantStatic  = "static"
)

// PricingMetrics groups Prometheus collectors for bundle pricing.
type PricingMetrics struct {
	PolicySwaps *prometheus.CounterVec
	Totals      *prometheus.HistogramVec
}

// NewPricingMetrics registers and returns pricing collectors. Collectors that
// are already registered on reg are reused.
func NewPricingMetrics(namespace string, reg prometheus.Registerer) *PricingMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &PricingMetrics{
		PolicySwaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "policy_swaps_total",
			Help:      "Number of discount policy swaps by variant and policy kind.",
		}, []string{"variant", "kind"}),
		Totals: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bundle_total_price",
			Help:      "Distribution of computed bundle totals.",
			Buckets:   prometheus.ExponentialBuckets(100, 10, 8),
		}, []string{"variant"}),
	}
	mustRegisterCollector(reg, m.PolicySwaps, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.CounterVec); ok {
			m.PolicySwaps = v
		}
	})
	mustRegisterCollector(reg, m.Totals, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.HistogramVec); ok {
			m.Totals = v
		}
	})
	return m
}

// RecordSwap counts a policy swap.
func (m *PricingMetrics) RecordSwap(variant string, kind discount.Kind) {
	if m == nil {
		return
	}
	m.PolicySwaps.WithLabelValues(variant, string(kind)).Inc()
}

// ObserveTotal records a computed total.
func (m *PricingMetrics) ObserveTotal(variant string, total float64) {
	if m == nil {
		return
	}
	m.Totals.WithLabelValues(variant).Observe(total)
}

// Subscriber returns an events.Subscriber counting swaps under variant.
func (m *PricingMetrics) Subscriber(variant string) events.Subscriber {
	return events.SubscriberFunc(func(ev events.PriceChanged) error {
		m.RecordSwap(variant, ev.Kind)
		return nil
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register pricing metric: %w", err))
	}
}
