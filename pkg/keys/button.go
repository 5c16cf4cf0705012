package keys

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/keyremap/pkg/errors"
)

// Button is a pointer button, identified by its evdev BTN_* code.
type Button uint16

// Mouse buttons (evdev BTN_MOUSE range).
const (
	ButtonLeft    Button = 0x110
	ButtonRight   Button = 0x111
	ButtonMiddle  Button = 0x112
	ButtonSide    Button = 0x113
	ButtonExtra   Button = 0x114
	ButtonForward Button = 0x115
	ButtonBack    Button = 0x116
	ButtonTask    Button = 0x117
)

// Bounds of the evdev BTN_MISC .. BTN_GEAR_UP range. Codes in this range
// are reported as buttons, never as keys.
const (
	minButton Button = 0x100
	maxButton Button = 0x151
)

var buttonNames = map[Button]string{
	ButtonLeft:    "Left",
	ButtonRight:   "Right",
	ButtonMiddle:  "Middle",
	ButtonSide:    "Side",
	ButtonExtra:   "Extra",
	ButtonForward: "Forward",
	ButtonBack:    "Back",
	ButtonTask:    "Task",
}

var buttonsByName = func() map[string]Button {
	m := make(map[string]Button, len(buttonNames))
	for b, name := range buttonNames {
		m[strings.ToLower(name)] = b
	}
	return m
}()

func isButtonCode(code uint16) bool {
	return code >= uint16(minButton) && code <= uint16(maxButton)
}

// IsButtonCode reports whether an evdev EV_KEY code belongs to a button.
func IsButtonCode(code uint16) bool {
	return isButtonCode(code)
}

// String returns the configuration name of the button. Codes without a
// name are printed in hex, which ParseButton accepts back.
func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return fmt.Sprintf("%#x", uint16(b))
}

// ParseButton resolves a configuration button name or numeric code.
func ParseButton(name string) (Button, error) {
	trimmed := strings.TrimSpace(name)
	if b, ok := buttonsByName[strings.ToLower(trimmed)]; ok {
		return b, nil
	}
	if code, ok := parseCode(trimmed); ok && isButtonCode(uint16(code)) {
		return Button(code), nil
	}
	return 0, errors.Newf(errors.ErrUnknownKey, "unknown button %q", name).WithDetail("name", name)
}

// ButtonNames lists every button name in sorted order.
func ButtonNames() []string {
	names := make([]string, 0, len(buttonNames))
	for _, name := range buttonNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
