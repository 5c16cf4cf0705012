package host_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/arthur-debert/keyremap/pkg/host"
	"github.com/arthur-debert/keyremap/pkg/keys"
	"github.com/arthur-debert/keyremap/pkg/remap"
	"github.com/arthur-debert/keyremap/pkg/rules"
	"github.com/arthur-debert/keyremap/pkg/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ev(kind remap.Kind, in keys.Input) remap.RawEvent {
	return remap.RawEvent{Kind: kind, Origin: in}
}

func TestRunnerAppliesEngine(t *testing.T) {
	rec := &synth.Recorder{}
	engine := remap.New(rules.NewTable([]rules.Rule{
		{Name: "caps", Enabled: true, From: keys.KeyInput(keys.KeyCapsLock), To: rules.SingleKey(keys.KeyEscape)},
	}), synth.New(rec, synth.WithSleep(rec.Sleep)))

	hook := &host.ScriptedHook{Events: []remap.RawEvent{
		ev(remap.Press, keys.KeyInput(keys.KeyCapsLock)),
		ev(remap.Press, keys.KeyInput(keys.KeyA)),
		ev(remap.Release, keys.KeyInput(keys.KeyA)),
		ev(remap.Release, keys.KeyInput(keys.KeyCapsLock)),
	}}

	var seen []remap.Decision
	runner := host.NewRunner(hook, engine, host.WithObserver(func(d remap.Decision) {
		seen = append(seen, d)
	}))

	require.NoError(t, runner.Run(context.Background()))

	assert.Equal(t, []remap.Outcome{remap.Suppress, remap.PassThrough, remap.PassThrough, remap.Suppress}, hook.Outcomes)
	assert.Equal(t, []remap.RawEvent{
		ev(remap.Press, keys.KeyInput(keys.KeyA)),
		ev(remap.Release, keys.KeyInput(keys.KeyA)),
	}, hook.Forwarded())
	assert.Equal(t, []string{"press Escape", "release Escape"}, rec.Lines())
	assert.Len(t, seen, 4)

	decided, suppressed := runner.Stats()
	assert.Equal(t, 4, decided)
	assert.Equal(t, 2, suppressed)
}

func TestRunnerStopsOnCancel(t *testing.T) {
	hook := &host.ScriptedHook{Events: []remap.RawEvent{ev(remap.Press, keys.KeyInput(keys.KeyA))}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := host.NewRunner(hook, remap.New(nil, nil))
	require.NoError(t, runner.Run(ctx))
	assert.Empty(t, hook.Outcomes)
}

func TestListen(t *testing.T) {
	hook := &host.ScriptedHook{Events: []remap.RawEvent{
		ev(remap.Press, keys.KeyInput(keys.KeyA)),
		ev(remap.Release, keys.ButtonInput(keys.ButtonSide)),
	}}

	var buf bytes.Buffer
	require.NoError(t, host.Listen(context.Background(), hook, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"press   Key(KeyA)",
		"release Button(Side)",
	}, lines)
	assert.Equal(t, []remap.Outcome{remap.PassThrough, remap.PassThrough}, hook.Outcomes)
}

func TestListenCustomFormatter(t *testing.T) {
	hook := &host.ScriptedHook{Events: []remap.RawEvent{ev(remap.Press, keys.KeyInput(keys.KeyA))}}

	var buf bytes.Buffer
	err := host.Listen(context.Background(), hook, &buf, host.WithFormatter(func(e remap.RawEvent) string {
		return "custom " + e.Origin.String()
	}))
	require.NoError(t, err)
	assert.Equal(t, "custom Key(KeyA)\n", buf.String())
}
