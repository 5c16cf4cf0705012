//go:build linux

package evdev

import (
	"bytes"
	"encoding/binary"
	"os"
	"sync"

	"github.com/arthur-debert/keyremap/pkg/errors"
	"github.com/arthur-debert/keyremap/pkg/keys"
	"github.com/arthur-debert/keyremap/pkg/logging"
	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// UinputPath is the uinput control node.
const UinputPath = "/dev/uinput"

const (
	uiSetEvBit   = 0x40045564
	uiSetKeyBit  = 0x40045565
	uiSetRelBit  = 0x40045566
	uiDevCreate  = 0x5501
	uiDevDestroy = 0x5502

	uinputMaxNameSize = 80
	absCnt            = 64
	busVirtual        = 0x06
)

// relative axes forwarded from grabbed mice: X, Y, HWHEEL, WHEEL and the
// high resolution wheels.
var relAxes = []int{0x00, 0x01, 0x06, 0x08, 0x0b, 0x0c}

// uinputUserDev mirrors struct uinput_user_dev.
type uinputUserDev struct {
	Name         [uinputMaxNameSize]byte
	BusType      uint16
	Vendor       uint16
	Product      uint16
	Version      uint16
	FFEffectsMax uint32
	AbsMax       [absCnt]int32
	AbsMin       [absCnt]int32
	AbsFuzz      [absCnt]int32
	AbsFlat      [absCnt]int32
}

// Device is a uinput virtual keyboard and mouse.
type Device struct {
	name   string
	logger zerolog.Logger

	mu      sync.Mutex
	f       *os.File
	pressed pressedKeys
}

// NewDevice creates a virtual device called name. It can emit every key and
// button code and the usual pointer axes.
func NewDevice(name string) (*Device, error) {
	f, err := os.OpenFile(UinputPath, os.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrHookInstall, "failed to open %s", UinputPath)
	}

	d := &Device{
		name:    name,
		logger:  logging.GetLogger("host.evdev"),
		f:       f,
		pressed: pressedKeys{},
	}
	if err := d.setup(); err != nil {
		_ = f.Close()
		return nil, err
	}

	d.logger.Debug().Str("name", name).Msg("Virtual device created")
	return d, nil
}

func (d *Device) setup() error {
	fd := int(d.f.Fd())

	for _, ev := range []uint16{EvSyn, EvKey, EvRel, EvMsc} {
		if err := unix.IoctlSetInt(fd, uiSetEvBit, int(ev)); err != nil {
			return errors.Wrap(err, errors.ErrHookInstall, "UI_SET_EVBIT failed")
		}
	}
	for code := 1; code <= int(keys.MaxKey); code++ {
		if err := unix.IoctlSetInt(fd, uiSetKeyBit, code); err != nil {
			return errors.Wrapf(err, errors.ErrHookInstall, "UI_SET_KEYBIT %d failed", code)
		}
	}
	for _, axis := range relAxes {
		if err := unix.IoctlSetInt(fd, uiSetRelBit, axis); err != nil {
			return errors.Wrap(err, errors.ErrHookInstall, "UI_SET_RELBIT failed")
		}
	}

	var dev uinputUserDev
	copy(dev.Name[:uinputMaxNameSize-1], d.name)
	dev.BusType = busVirtual
	dev.Vendor = 0x1
	dev.Product = 0x1
	dev.Version = 1

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &dev); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode uinput_user_dev")
	}
	if _, err := d.f.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, errors.ErrHookInstall, "failed to describe virtual device")
	}

	if err := unix.IoctlSetInt(fd, uiDevCreate, 0); err != nil {
		return errors.Wrap(err, errors.ErrHookInstall, "UI_DEV_CREATE failed")
	}
	return nil
}

// Name returns the device name.
func (d *Device) Name() string {
	return d.name
}

// Write emits events as one batch. A press of a key the device already
// holds is sent as autorepeat.
func (d *Device) Write(evs ...Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.f == nil {
		return errors.New(errors.ErrInject, "virtual device is closed")
	}

	buf := make([]byte, 0, FrameSize*len(evs))
	for _, ev := range evs {
		buf = append(buf, Encode(d.pressed.apply(ev))...)
	}
	if _, err := d.f.Write(buf); err != nil {
		return errors.Wrap(err, errors.ErrInject, "failed to write to virtual device")
	}
	return nil
}

// InjectKey implements synth.Injector: one key transition followed by a
// sync report.
func (d *Device) InjectKey(k keys.Key, press bool) error {
	return d.Write(KeyEvent(k, press), Sync())
}

// Close destroys the virtual device.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.f == nil {
		return nil
	}
	_ = unix.IoctlSetInt(int(d.f.Fd()), uiDevDestroy, 0)
	err := d.f.Close()
	d.f = nil
	return err
}
