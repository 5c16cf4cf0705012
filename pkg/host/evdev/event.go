package evdev

import (
	"encoding/binary"
	"time"

	"github.com/arthur-debert/keyremap/pkg/keys"
	"github.com/arthur-debert/keyremap/pkg/remap"
)

// FrameSize is the size of struct input_event on 64-bit Linux.
const FrameSize = 24

// Event types and values used by the hook.
const (
	EvSyn uint16 = 0x00
	EvKey uint16 = 0x01
	EvRel uint16 = 0x02
	EvMsc uint16 = 0x04

	SynReport uint16 = 0

	ValueRelease int32 = 0
	ValuePress   int32 = 1
	ValueRepeat  int32 = 2
)

// Event is one decoded input_event.
type Event struct {
	Time  time.Time
	Type  uint16
	Code  uint16
	Value int32
}

// Decode parses one frame. It returns false when buf is shorter than a
// frame.
func Decode(buf []byte) (Event, bool) {
	if len(buf) < FrameSize {
		return Event{}, false
	}
	sec := int64(binary.LittleEndian.Uint64(buf[0:8]))
	usec := int64(binary.LittleEndian.Uint64(buf[8:16]))
	return Event{
		Time:  time.Unix(sec, usec*int64(time.Microsecond)),
		Type:  binary.LittleEndian.Uint16(buf[16:18]),
		Code:  binary.LittleEndian.Uint16(buf[18:20]),
		Value: int32(binary.LittleEndian.Uint32(buf[20:24])),
	}, true
}

// Encode renders ev as a frame. A zero Time is written as zero, which the
// kernel replaces with the injection time.
func Encode(ev Event) []byte {
	buf := make([]byte, FrameSize)
	if !ev.Time.IsZero() {
		binary.LittleEndian.PutUint64(buf[0:8], uint64(ev.Time.Unix()))
		binary.LittleEndian.PutUint64(buf[8:16], uint64(ev.Time.Nanosecond()/int(time.Microsecond)))
	}
	binary.LittleEndian.PutUint16(buf[16:18], ev.Type)
	binary.LittleEndian.PutUint16(buf[18:20], ev.Code)
	binary.LittleEndian.PutUint32(buf[20:24], uint32(ev.Value))
	return buf
}

// ToRaw converts a key event to a remap.RawEvent. Autorepeat is reported as
// a press. Non-key events and unknown values return false.
func ToRaw(ev Event) (remap.RawEvent, bool) {
	if ev.Type != EvKey || ev.Code == 0 {
		return remap.RawEvent{}, false
	}
	var kind remap.Kind
	switch ev.Value {
	case ValuePress, ValueRepeat:
		kind = remap.Press
	case ValueRelease:
		kind = remap.Release
	default:
		return remap.RawEvent{}, false
	}
	return remap.RawEvent{Kind: kind, Origin: keys.FromCode(ev.Code)}, true
}

// KeyEvent returns the EV_KEY event for a synthetic key transition.
func KeyEvent(k keys.Key, press bool) Event {
	v := ValueRelease
	if press {
		v = ValuePress
	}
	return Event{Type: EvKey, Code: uint16(k), Value: v}
}

// Sync returns a SYN_REPORT event.
func Sync() Event {
	return Event{Type: EvSyn, Code: SynReport}
}
