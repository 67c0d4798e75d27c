package watch

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ib-77/railkit/pkg/rail/fault"
)

// Log writes step events through zerolog: Debug for successes, Warn for
// failures. Failure events carry the fault code and kind.
type Log struct {
	logger zerolog.Logger
}

// NewLog returns a sink writing through logger.
func NewLog(logger zerolog.Logger) Log {
	return Log{logger: logger}
}

func (s Log) Step(_ context.Context, e Event) {
	var ev *zerolog.Event
	if e.Success {
		ev = s.logger.Debug()
	} else {
		ev = s.logger.Warn()
	}

	ev = ev.
		Str("op", e.Op).
		Str("result_id", e.ResultID.String()).
		Dur("elapsed", e.Elapsed)

	if e.Err != nil {
		f := fault.From(e.Err)
		ev = ev.
			Err(e.Err).
			Str("code", f.Code()).
			Str("kind", f.Kind().String()).
			Bool("canceled", e.Canceled)
	}

	ev.Msg("rail step")
}
