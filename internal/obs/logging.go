package obs

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/bundle-pricing/internal/events"
)

// NewLoggerTo configures a zerolog logger writing to w using the provided
// format and level.
func NewLoggerTo(w io.Writer, format, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := w
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console", "text":
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// LogSubscriber records structured price change logs.
type LogSubscriber struct {
	Logger zerolog.Logger
}

// OnPriceChanged implements events.Subscriber.
func (l LogSubscriber) OnPriceChanged(ev events.PriceChanged) error {
	l.Logger.Info().
		Str("event_id", ev.ID.String()).
		Str("node", ev.Node).
		Str("policy", ev.Policy).
		Str("kind", string(ev.Kind)).
		Str("discount", ev.Describe).
		Float64("total", ev.Total).
		Time("occurred_at", ev.OccurredAt).
		Msg("price_changed")
	return nil
}
