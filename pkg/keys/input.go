package keys

import "fmt"

// Source tells which kind of physical control an Input refers to.
type Source uint8

const (
	// SourceNone is the zero value: an Input that refers to nothing.
	SourceNone Source = iota
	// SourceKey is a keyboard key.
	SourceKey
	// SourceButton is a pointer button.
	SourceButton
)

func (s Source) String() string {
	switch s {
	case SourceKey:
		return "key"
	case SourceButton:
		return "button"
	default:
		return "none"
	}
}

// Input identifies one physical control: either a key or a button, never
// both. Two inputs are equal only when source and code are both equal, so a
// key never compares equal to a button that happens to share a code.
type Input struct {
	Source Source
	Code   uint16
}

// KeyInput returns the Input for a keyboard key.
func KeyInput(k Key) Input {
	return Input{Source: SourceKey, Code: uint16(k)}
}

// ButtonInput returns the Input for a pointer button.
func ButtonInput(b Button) Input {
	return Input{Source: SourceButton, Code: uint16(b)}
}

// FromCode classifies a raw evdev EV_KEY code.
func FromCode(code uint16) Input {
	if isButtonCode(code) {
		return ButtonInput(Button(code))
	}
	return KeyInput(Key(code))
}

// IsZero reports whether the input refers to nothing.
func (in Input) IsZero() bool {
	return in.Source == SourceNone
}

// Key returns the key and true when the input is a key.
func (in Input) Key() (Key, bool) {
	return Key(in.Code), in.Source == SourceKey
}

// Button returns the button and true when the input is a button.
func (in Input) Button() (Button, bool) {
	return Button(in.Code), in.Source == SourceButton
}

func (in Input) String() string {
	switch in.Source {
	case SourceKey:
		return fmt.Sprintf("Key(%s)", Key(in.Code))
	case SourceButton:
		return fmt.Sprintf("Button(%s)", Button(in.Code))
	default:
		return "None"
	}
}
