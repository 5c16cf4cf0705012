package evdev

import "time"

// DefaultReleaseTimeout bounds how long Open waits for keys held at startup
// to be released before grabbing anyway.
const DefaultReleaseTimeout = 2 * time.Second

// releasePoll is the EVIOCGKEY polling interval while waiting for release.
const releasePoll = 10 * time.Millisecond

// HeldKeys returns the codes set in an EVIOCGKEY bitmap, lowest first.
func HeldKeys(bitmap []byte) []uint16 {
	var held []uint16
	for i, b := range bitmap {
		for bit := 0; bit < 8; bit++ {
			if b&(1<<bit) != 0 {
				held = append(held, uint16(i*8+bit))
			}
		}
	}
	return held
}

// awaitRelease polls until no key is down or timeout has elapsed, and
// returns the keys still held. A poll error ends the wait.
func awaitRelease(poll func() ([]byte, error), timeout, interval time.Duration, sleep func(time.Duration)) ([]uint16, error) {
	for waited := time.Duration(0); ; waited += interval {
		bitmap, err := poll()
		if err != nil {
			return nil, err
		}
		held := HeldKeys(bitmap)
		if len(held) == 0 || waited >= timeout {
			return held, nil
		}
		sleep(interval)
	}
}

// pressedKeys is the key state of the virtual device. A press of a key it
// already holds goes out as autorepeat, since the input core drops a second
// press for a key that is down.
type pressedKeys map[uint16]bool

func (p pressedKeys) apply(ev Event) Event {
	if ev.Type != EvKey {
		return ev
	}
	switch ev.Value {
	case ValuePress:
		if p[ev.Code] {
			ev.Value = ValueRepeat
		} else {
			p[ev.Code] = true
		}
	case ValueRelease:
		delete(p, ev.Code)
	}
	return ev
}
