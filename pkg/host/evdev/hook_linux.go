//go:build linux

package evdev

import (
	"context"
	"io"
	"os"
	"sync"
	"time"
	"unsafe"

	"github.com/arthur-debert/keyremap/pkg/errors"
	"github.com/arthur-debert/keyremap/pkg/host"
	"github.com/arthur-debert/keyremap/pkg/logging"
	"github.com/arthur-debert/keyremap/pkg/remap"
	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

const (
	eviocGrab = 0x40044590
	// EVIOCGKEY sized for a bitmap of every code up to KEY_MAX.
	eviocGKey = 0x80604518

	keyBitmapSize = 96
)

// Output receives the events a grabbed device lets through. *Device
// implements it.
type Output interface {
	Write(evs ...Event) error
}

// Config selects the devices a Hook reads.
type Config struct {
	// Paths lists event devices explicitly. Empty means discover.
	Paths []string
	// Mice includes pointer devices in discovery.
	Mice bool
	// Grab takes exclusive access to each device. Without it events still
	// reach other applications and suppression has no effect.
	Grab bool
	// DevicesFile overrides /proc/bus/input/devices.
	DevicesFile string
	// ReleaseTimeout bounds the wait for keys held at startup before a
	// grab. Zero means DefaultReleaseTimeout.
	ReleaseTimeout time.Duration
}

func (c Config) releaseTimeout() time.Duration {
	if c.ReleaseTimeout > 0 {
		return c.ReleaseTimeout
	}
	return DefaultReleaseTimeout
}

// frame is one decoded event tagged with the device it came from.
type frame struct {
	ev  Event
	dev string
}

// Hook reads every selected device, hands key events to a handler and
// forwards what the handler lets through to the virtual device.
type Hook struct {
	cfg    Config
	out    Output
	files  []*os.File
	logger zerolog.Logger

	closeOnce sync.Once
}

var _ host.Hook = (*Hook)(nil)

// Open opens the devices selected by cfg. out receives pass-through events
// and must be non-nil when cfg.Grab is set.
func Open(cfg Config, out *Device) (*Hook, error) {
	logger := logging.GetLogger("host.evdev")

	if cfg.Grab && out == nil {
		return nil, errors.New(errors.ErrHookInstall, "grabbing devices requires a virtual output device")
	}

	paths := cfg.Paths
	if len(paths) == 0 {
		exclude := ""
		if out != nil {
			exclude = out.Name()
		}
		var err error
		paths, err = Discover(cfg.DevicesFile, cfg.Mice, exclude)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrHookInstall, "failed to discover input devices")
		}
	}
	if len(paths) == 0 {
		return nil, errors.New(errors.ErrHookInstall, "no input devices found")
	}

	h := &Hook{cfg: cfg, logger: logger}
	if out != nil {
		h.out = out
	}
	for _, p := range paths {
		f, err := os.OpenFile(p, os.O_RDONLY, 0)
		if err != nil {
			logger.Warn().Err(err).Str("device", p).Msg("Cannot open input device (need the input group or root)")
			continue
		}
		if cfg.Grab {
			h.waitForRelease(f)
			if err := ioctlFile(f, eviocGrab, 1); err != nil {
				logger.Warn().Err(err).Str("device", p).Msg("Cannot grab input device")
				_ = f.Close()
				continue
			}
		}
		logger.Debug().Str("device", p).Bool("grab", cfg.Grab).Msg("Reading input device")
		h.files = append(h.files, f)
	}

	if len(h.files) == 0 {
		return nil, errors.New(errors.ErrHookInstall, "no input device could be opened").
			WithDetail("devices", paths)
	}
	return h, nil
}

// waitForRelease delays a grab while keys are down on f. Grabbing a held
// key would swallow its release and leave it repeating in the session.
func (h *Hook) waitForRelease(f *os.File) {
	poll := func() ([]byte, error) { return keyBitmap(f) }
	held, err := awaitRelease(poll, h.cfg.releaseTimeout(), releasePoll, time.Sleep)
	switch {
	case err != nil:
		h.logger.Debug().Err(err).Str("device", f.Name()).Msg("Cannot read key state, grabbing anyway")
	case len(held) > 0:
		h.logger.Warn().Str("device", f.Name()).Interface("held", held).Msg("Keys still held, grabbing anyway")
	}
}

// Devices returns the paths being read.
func (h *Hook) Devices() []string {
	out := make([]string, len(h.files))
	for i, f := range h.files {
		out[i] = f.Name()
	}
	return out
}

// Run starts one reader per device and dispatches every event on the
// calling goroutine. It returns when ctx is done or every device has
// failed.
func (h *Hook) Run(ctx context.Context, handler host.Handler) error {
	frames := make(chan frame, 64)
	var wg sync.WaitGroup

	for _, f := range h.files {
		wg.Add(1)
		go func(f *os.File) {
			defer wg.Done()
			h.read(ctx, f, frames)
		}(f)
	}

	readersDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(readersDone)
	}()

	// Closing the files unblocks pending reads.
	stop := context.AfterFunc(ctx, func() { _ = h.Close() })
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-readersDone:
			if ctx.Err() != nil {
				return nil
			}
			return errors.New(errors.ErrHookInstall, "all input devices were lost")
		case fr := <-frames:
			h.dispatch(fr, handler)
		}
	}
}

func (h *Hook) read(ctx context.Context, f *os.File, frames chan<- frame) {
	buf := make([]byte, FrameSize*64)
	for {
		n, err := f.Read(buf)
		if err != nil {
			if ctx.Err() == nil && err != io.EOF {
				h.logger.Warn().Err(err).Str("device", f.Name()).Msg("Input device read failed")
			}
			return
		}
		for off := 0; off+FrameSize <= n; off += FrameSize {
			ev, _ := Decode(buf[off : off+FrameSize])
			select {
			case frames <- frame{ev: ev, dev: f.Name()}:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (h *Hook) dispatch(fr frame, handler host.Handler) {
	raw, ok := ToRaw(fr.ev)
	if !ok {
		h.forward(fr.ev)
		return
	}

	if handler(raw) == remap.PassThrough {
		h.forward(fr.ev)
	}
}

// forward re-emits ev on the virtual device. Ungrabbed devices already
// delivered it to the system.
func (h *Hook) forward(ev Event) {
	if !h.cfg.Grab || h.out == nil {
		return
	}
	if err := h.out.Write(ev); err != nil {
		h.logger.Error().Err(err).Uint16("type", ev.Type).Uint16("code", ev.Code).Msg("Failed to forward event")
	}
}

// Close releases the grabs and closes every device. The virtual output
// device is left open.
func (h *Hook) Close() error {
	var errs []error
	h.closeOnce.Do(func() {
		for _, f := range h.files {
			if h.cfg.Grab {
				_ = ioctlFile(f, eviocGrab, 0)
			}
			errs = append(errs, f.Close())
		}
	})
	return errors.Join(errors.ErrHookInstall, "failed to close input devices", errs...)
}

// keyBitmap reads the device's current key state with EVIOCGKEY.
func keyBitmap(f *os.File) ([]byte, error) {
	rc, err := f.SyscallConn()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, keyBitmapSize)
	var ierr error
	if err := rc.Control(func(fd uintptr) {
		_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, eviocGKey, uintptr(unsafe.Pointer(&buf[0])))
		if errno != 0 {
			ierr = errno
		}
	}); err != nil {
		return nil, err
	}
	return buf, ierr
}

// ioctlFile issues an int ioctl without switching f to blocking mode, so
// Close can still interrupt a pending Read.
func ioctlFile(f *os.File, req uint, value int) error {
	rc, err := f.SyscallConn()
	if err != nil {
		return err
	}
	var ierr error
	if err := rc.Control(func(fd uintptr) {
		ierr = unix.IoctlSetInt(int(fd), req, value)
	}); err != nil {
		return err
	}
	return ierr
}
