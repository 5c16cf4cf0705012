//go:build !linux

package evdev

import (
	"context"
	"time"

	"github.com/arthur-debert/keyremap/pkg/errors"
	"github.com/arthur-debert/keyremap/pkg/host"
	"github.com/arthur-debert/keyremap/pkg/keys"
)

// Config selects the devices a Hook reads.
type Config struct {
	Paths          []string
	Mice           bool
	Grab           bool
	DevicesFile    string
	ReleaseTimeout time.Duration
}

// Hook is unavailable on this platform.
type Hook struct{}

// Device is unavailable on this platform.
type Device struct{}

func unavailable() error {
	return errors.New(errors.ErrHookUnavailable, "input hooking is only implemented for Linux evdev")
}

// Open always fails on this platform.
func Open(Config, *Device) (*Hook, error) {
	return nil, unavailable()
}

// NewDevice always fails on this platform.
func NewDevice(string) (*Device, error) {
	return nil, unavailable()
}

func (h *Hook) Devices() []string { return nil }

func (h *Hook) Run(context.Context, host.Handler) error { return unavailable() }

func (h *Hook) Close() error { return nil }

func (d *Device) Name() string { return "" }

func (d *Device) Write(...Event) error { return unavailable() }

func (d *Device) InjectKey(keys.Key, bool) error { return unavailable() }

func (d *Device) Close() error { return nil }
