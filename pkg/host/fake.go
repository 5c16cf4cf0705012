package host

import (
	"context"

	"github.com/arthur-debert/keyremap/pkg/remap"
)

// ScriptedHook replays a fixed list of events and records the outcome of
// each. It stands in for an OS hook in tests and dry runs.
type ScriptedHook struct {
	Events   []remap.RawEvent
	Outcomes []remap.Outcome
	Closed   bool
}

// Run delivers every scripted event in order, stopping early when ctx is
// done.
func (s *ScriptedHook) Run(ctx context.Context, h Handler) error {
	for _, ev := range s.Events {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		s.Outcomes = append(s.Outcomes, h(ev))
	}
	return nil
}

// Close marks the hook closed.
func (s *ScriptedHook) Close() error {
	s.Closed = true
	return nil
}

// Forwarded returns the events whose outcome was PassThrough, in order.
func (s *ScriptedHook) Forwarded() []remap.RawEvent {
	var out []remap.RawEvent
	for i, o := range s.Outcomes {
		if o == remap.PassThrough {
			out = append(out, s.Events[i])
		}
	}
	return out
}
