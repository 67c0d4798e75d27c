package watch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/railkit/pkg/rail"
)

// Event describes the outcome of a single pipeline step.
type Event struct {
	Op       string
	ResultID uuid.UUID
	Success  bool
	Canceled bool
	Err      error
	Elapsed  time.Duration
	At       time.Time
}

// Sink receives step events. Implementations must be safe for use from
// multiple goroutines; flow stages report from their worker lines.
type Sink interface {
	Step(ctx context.Context, e Event)
}

// EventOf builds the Event for a finished step named op.
func EventOf[T any](op string, r rail.Result[T], elapsed time.Duration) Event {
	e := Event{
		Op:       op,
		ResultID: r.ID(),
		Success:  r.IsSuccess(),
		Canceled: r.IsCanceled(),
		Elapsed:  elapsed,
		At:       time.Now(),
	}
	if r.IsFailure() {
		e.Err = r.Err()
	}
	return e
}
