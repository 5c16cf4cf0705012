package display

import (
	"fmt"

	"github.com/arthur-debert/keyremap/pkg/host"
	"github.com/arthur-debert/keyremap/pkg/remap"
)

// EventLine renders one listen-mode line. Unstyled output matches
// host.FormatEvent.
func EventLine(ev remap.RawEvent, styled bool) string {
	if !styled {
		return host.FormatEvent(ev)
	}
	kind := PressStyle
	if ev.Kind == remap.Release {
		kind = ReleaseStyle
	}
	return kind.Render(fmt.Sprintf("%-7s", ev.Kind)) + " " + OriginStyle.Render(ev.Origin.String())
}

// DecisionLine renders what the engine did with one event.
func DecisionLine(d remap.Decision, styled bool) string {
	line := EventLine(d.Event, styled)
	if !d.Matched() {
		return line
	}

	detail := fmt.Sprintf("-> %s [%s]", d.Outcome, d.Rule)
	for _, a := range d.Actions {
		switch a.Op {
		case remap.OpChord:
			detail += fmt.Sprintf(" chord %v", keyNames(a.Keys))
		default:
			detail += fmt.Sprintf(" %s %s", a.Op, a.Key)
		}
	}

	if styled {
		return line + " " + SuppressStyle.Render(detail)
	}
	return line + " " + detail
}
