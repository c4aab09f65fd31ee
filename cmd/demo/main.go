package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/noah-isme/bundle-pricing/internal/config"
	"github.com/noah-isme/bundle-pricing/internal/discount"
	"github.com/noah-isme/bundle-pricing/internal/dynamic"
	"github.com/noah-isme/bundle-pricing/internal/events"
	"github.com/noah-isme/bundle-pricing/internal/obs"
	"github.com/noah-isme/bundle-pricing/internal/pricing"
	"github.com/noah-isme/bundle-pricing/internal/scenario"
	"github.com/noah-isme/bundle-pricing/internal/static"
)

func main() {
	cfg := config.MustLoad()

	logger := obs.NewLoggerTo(os.Stderr, cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()
	metrics := obs.NewPricingMetrics(cfg.MetricsNamespace, prometheus.NewRegistry())

	ctx := context.Background()
	shutdown, err := obs.InitTracer(ctx, obs.TracingConfig{
		ServiceName:   "bundle-pricing-demo",
		Endpoint:      cfg.TracingEndpoint,
		Exporter:      cfg.TracingExporter,
		SamplingRatio: cfg.TracingSamplingRatio,
		Environment:   cfg.AppEnv,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("initialise tracing")
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("shutdown tracer")
		}
	}()

	bus := &events.Bus{}
	bus.Subscribe(obs.LogSubscriber{Logger: logger})
	bus.Subscribe(metrics.Subscriber(obs.VariantDynamic))

	runDynamic(os.Stdout, bus, &logger, metrics)
	runStatic(os.Stdout, metrics)
	compareLarge(ctx, cfg.LargeBundleSize, logger, metrics)
}

func runDynamic(w io.Writer, bus *events.Bus, logger *zerolog.Logger, metrics *obs.PricingMetrics) {
	bundle := dynamic.Observe(scenario.GamingDynamic(), bus, logger)
	fmt.Fprintln(w, "Dynamic")
	fmt.Fprint(w, pricing.Tree(bundle))

	bundle.SetPolicy(discount.NewPercent(20))
	fmt.Fprintln(w, "\nAfter changing the strategy:")
	fmt.Fprint(w, pricing.Tree(bundle))
	metrics.ObserveTotal(obs.VariantDynamic, bundle.TotalPrice())
}

func runStatic(w io.Writer, metrics *obs.PricingMetrics) {
	bundle := scenario.GamingStatic()
	fmt.Fprintln(w, "\nStatic")
	fmt.Fprint(w, pricing.Tree(bundle))

	fixed := static.WithBundlePolicy(bundle, discount.NewFixed(3000))
	metrics.RecordSwap(obs.VariantStatic, fixed.Policy().Kind())
	fmt.Fprintln(w, "\nAfter changing the strategy:")
	fmt.Fprint(w, pricing.Tree(fixed))
	metrics.ObserveTotal(obs.VariantStatic, fixed.TotalPrice())
}

func compareLarge(ctx context.Context, n int, logger zerolog.Logger, metrics *obs.PricingMetrics) {
	dyn := scenario.LargeDynamic(n)
	st := scenario.LargeStatic(n)

	start := time.Now()
	dynTotal := obs.TraceTotal(ctx, nil, obs.VariantDynamic, dyn.TotalPrice)
	dynElapsed := time.Since(start)

	start = time.Now()
	stTotal := obs.TraceTotal(ctx, nil, obs.VariantStatic, st.TotalPrice)
	stElapsed := time.Since(start)

	metrics.ObserveTotal(obs.VariantDynamic, dynTotal)
	metrics.ObserveTotal(obs.VariantStatic, stTotal)

	evt := logger.Info()
	if !pricing.ApproxEqual(dynTotal, stTotal) {
		evt = logger.Error()
	}
	evt.Int("leaves", n).
		Float64("dynamic_total", dynTotal).
		Float64("static_total", stTotal).
		Dur("dynamic_elapsed", dynElapsed).
		Dur("static_elapsed", stElapsed).
		Bool("equivalent", pricing.ApproxEqual(dynTotal, stTotal)).
		Msg("large bundle comparison")
}
