// Package usecase holds what every mutation action shares once its single
// write has succeeded or failed. The actions themselves live in the
// per-entity subpackages.
package usecase

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/rental-marketplace/internal/audit"
	"github.com/BruksfildServices01/rental-marketplace/internal/events"
	"github.com/BruksfildServices01/rental-marketplace/internal/outcome"
)

type Revalidator interface {
	Revalidate(ctx context.Context, paths ...string)
}

type ActionRecorder interface {
	RecordAction(action, result string)
}

// Effects is the set of post-mutation side effects. Every field is optional.
type Effects struct {
	Audit   *audit.Dispatcher
	Views   Revalidator
	Metrics ActionRecorder
	Events  events.Publisher
}

// Succeeded marks paths stale, queues the audit row and counts the action.
func (e Effects) Succeeded(ctx context.Context, ev audit.Event, paths ...string) {
	if e.Views != nil && len(paths) > 0 {
		e.Views.Revalidate(ctx, paths...)
	}
	e.Audit.Dispatch(ev)
	e.record(ev.Action, "ok")
}

// Fail converts err into the action's result and counts it.
func (e Effects) Fail(action string, err error) (outcome.Outcome, error) {
	out, ferr := outcome.FromError(err)

	switch {
	case ferr != nil:
		e.record(action, "error")
	case out.IsRedirect():
		e.record(action, "redirect")
	default:
		e.record(action, "message")
	}
	return out, ferr
}

// Announce publishes a listing change. Failures are logged only.
func (e Effects) Announce(ctx context.Context, action, propertyID string) {
	if e.Events == nil {
		return
	}
	ev := events.ListingEvent{Action: action, PropertyID: propertyID}
	if err := e.Events.Publish(ctx, ev); err != nil {
		slog.Warn("listing event not published", "action", action, "property_id", propertyID, "error", err)
	}
}

func (e Effects) record(action, result string) {
	if e.Metrics != nil {
		e.Metrics.RecordAction(action, result)
	}
}
