package messaging

import (
	"context"

	"github.com/rs/zerolog"
)

// LogPublisher writes events to the log instead of a broker. It is used when
// AMQP_URL is unset.
type LogPublisher struct {
	logger zerolog.Logger
}

func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With().Str("component", "events").Logger()}
}

func (p *LogPublisher) Publish(_ context.Context, evt Event) error {
	p.logger.Info().
		Str("event_id", evt.ID).
		Str("event_type", evt.Type).
		RawJSON("data", evt.Data).
		Msg("event")
	return nil
}
