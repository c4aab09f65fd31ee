package obs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/noah-isme/bundle-pricing/internal/obs"
)

func TestTraceTotalRecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	total := obs.TraceTotal(context.Background(), tp.Tracer("test"), obs.VariantStatic, func() float64 { return 14450 })
	require.Equal(t, 14450.0, total)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, "pricing.total_price", spans[0].Name())
	require.Contains(t, spans[0].Attributes(), attribute.String("pricing.variant", obs.VariantStatic))
	require.Contains(t, spans[0].Attributes(), attribute.Float64("pricing.total", 14450))
}

func TestInitTracerWithoutExporter(t *testing.T) {
	shutdown, err := obs.InitTracer(context.Background(), obs.TracingConfig{ServiceName: "bundle-pricing", Exporter: "none"})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestInitTracerRejectsUnknownExporter(t *testing.T) {
	_, err := obs.InitTracer(context.Background(), obs.TracingConfig{Exporter: "zipkin"})
	require.Error(t, err)
}
