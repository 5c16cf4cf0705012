package keys

import (
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/keyremap/pkg/errors"
)

// Key is a keyboard key, identified by its evdev KEY_* code.
type Key uint16

// Keyboard keys with a configuration name.
const (
	KeyEscape         Key = 1
	KeyNum1           Key = 2
	KeyNum2           Key = 3
	KeyNum3           Key = 4
	KeyNum4           Key = 5
	KeyNum5           Key = 6
	KeyNum6           Key = 7
	KeyNum7           Key = 8
	KeyNum8           Key = 9
	KeyNum9           Key = 10
	KeyNum0           Key = 11
	KeyMinus          Key = 12
	KeyEqual          Key = 13
	KeyBackspace      Key = 14
	KeyTab            Key = 15
	KeyQ              Key = 16
	KeyW              Key = 17
	KeyE              Key = 18
	KeyR              Key = 19
	KeyT              Key = 20
	KeyY              Key = 21
	KeyU              Key = 22
	KeyI              Key = 23
	KeyO              Key = 24
	KeyP              Key = 25
	KeyLeftBracket    Key = 26
	KeyRightBracket   Key = 27
	KeyReturn         Key = 28
	KeyControlLeft    Key = 29
	KeyA              Key = 30
	KeyS              Key = 31
	KeyD              Key = 32
	KeyF              Key = 33
	KeyG              Key = 34
	KeyH              Key = 35
	KeyJ              Key = 36
	KeyK              Key = 37
	KeyL              Key = 38
	KeySemiColon      Key = 39
	KeyQuote          Key = 40
	KeyBackQuote      Key = 41
	KeyShiftLeft      Key = 42
	KeyBackSlash      Key = 43
	KeyZ              Key = 44
	KeyX              Key = 45
	KeyC              Key = 46
	KeyV              Key = 47
	KeyB              Key = 48
	KeyN              Key = 49
	KeyM              Key = 50
	KeyComma          Key = 51
	KeyDot            Key = 52
	KeySlash          Key = 53
	KeyShiftRight     Key = 54
	KeyKpMultiply     Key = 55
	KeyAlt            Key = 56
	KeySpace          Key = 57
	KeyCapsLock       Key = 58
	KeyF1             Key = 59
	KeyF2             Key = 60
	KeyF3             Key = 61
	KeyF4             Key = 62
	KeyF5             Key = 63
	KeyF6             Key = 64
	KeyF7             Key = 65
	KeyF8             Key = 66
	KeyF9             Key = 67
	KeyF10            Key = 68
	KeyNumLock        Key = 69
	KeyScrollLock     Key = 70
	KeyKp7            Key = 71
	KeyKp8            Key = 72
	KeyKp9            Key = 73
	KeyKpMinus        Key = 74
	KeyKp4            Key = 75
	KeyKp5            Key = 76
	KeyKp6            Key = 77
	KeyKpPlus         Key = 78
	KeyKp1            Key = 79
	KeyKp2            Key = 80
	KeyKp3            Key = 81
	KeyKp0            Key = 82
	KeyKpDelete       Key = 83
	KeyIntlBackslash  Key = 86
	KeyF11            Key = 87
	KeyF12            Key = 88
	KeyKpReturn       Key = 96
	KeyControlRight   Key = 97
	KeyKpDivide       Key = 98
	KeyPrintScreen    Key = 99
	KeyAltGr          Key = 100
	KeyHome           Key = 102
	KeyUpArrow        Key = 103
	KeyPageUp         Key = 104
	KeyLeftArrow      Key = 105
	KeyRightArrow     Key = 106
	KeyEnd            Key = 107
	KeyDownArrow      Key = 108
	KeyPageDown       Key = 109
	KeyInsert         Key = 110
	KeyDelete         Key = 111
	KeyVolumeMute     Key = 113
	KeyVolumeDown     Key = 114
	KeyVolumeUp       Key = 115
	KeyKpEqual        Key = 117
	KeyPause          Key = 119
	KeyMetaLeft       Key = 125
	KeyMetaRight      Key = 126
	KeyMenu           Key = 127
	KeyMediaNext      Key = 163
	KeyMediaPlayPause Key = 164
	KeyMediaPrevious  Key = 165
	KeyMediaStop      Key = 166
	KeyF13            Key = 183
	KeyF14            Key = 184
	KeyF15            Key = 185
	KeyF16            Key = 186
	KeyF17            Key = 187
	KeyF18            Key = 188
	KeyF19            Key = 189
	KeyF20            Key = 190
	KeyF21            Key = 191
	KeyF22            Key = 192
	KeyF23            Key = 193
	KeyF24            Key = 194
	KeyFunction       Key = 464
)

// MaxKey is the highest code a Key may carry (evdev KEY_MAX).
const MaxKey Key = 0x2ff

var keyNames = map[Key]string{
	KeyEscape: "Escape", KeyBackspace: "Backspace", KeyTab: "Tab", KeyReturn: "Return",
	KeySpace: "Space", KeyCapsLock: "CapsLock", KeyNumLock: "NumLock", KeyScrollLock: "ScrollLock",
	KeyPrintScreen: "PrintScreen", KeyPause: "Pause", KeyInsert: "Insert", KeyDelete: "Delete",
	KeyHome: "Home", KeyEnd: "End", KeyPageUp: "PageUp", KeyPageDown: "PageDown",
	KeyUpArrow: "UpArrow", KeyDownArrow: "DownArrow", KeyLeftArrow: "LeftArrow", KeyRightArrow: "RightArrow",

	KeyControlLeft: "ControlLeft", KeyControlRight: "ControlRight",
	KeyShiftLeft: "ShiftLeft", KeyShiftRight: "ShiftRight",
	KeyAlt: "Alt", KeyAltGr: "AltGr", KeyMetaLeft: "MetaLeft", KeyMetaRight: "MetaRight",
	KeyMenu: "Menu", KeyFunction: "Function",

	KeyNum1: "Num1", KeyNum2: "Num2", KeyNum3: "Num3", KeyNum4: "Num4", KeyNum5: "Num5",
	KeyNum6: "Num6", KeyNum7: "Num7", KeyNum8: "Num8", KeyNum9: "Num9", KeyNum0: "Num0",

	KeyA: "KeyA", KeyB: "KeyB", KeyC: "KeyC", KeyD: "KeyD", KeyE: "KeyE", KeyF: "KeyF", KeyG: "KeyG",
	KeyH: "KeyH", KeyI: "KeyI", KeyJ: "KeyJ", KeyK: "KeyK", KeyL: "KeyL", KeyM: "KeyM", KeyN: "KeyN",
	KeyO: "KeyO", KeyP: "KeyP", KeyQ: "KeyQ", KeyR: "KeyR", KeyS: "KeyS", KeyT: "KeyT", KeyU: "KeyU",
	KeyV: "KeyV", KeyW: "KeyW", KeyX: "KeyX", KeyY: "KeyY", KeyZ: "KeyZ",

	KeyMinus: "Minus", KeyEqual: "Equal", KeyLeftBracket: "LeftBracket", KeyRightBracket: "RightBracket",
	KeySemiColon: "SemiColon", KeyQuote: "Quote", KeyBackQuote: "BackQuote", KeyBackSlash: "BackSlash",
	KeyIntlBackslash: "IntlBackslash", KeyComma: "Comma", KeyDot: "Dot", KeySlash: "Slash",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyF13: "F13", KeyF14: "F14", KeyF15: "F15", KeyF16: "F16", KeyF17: "F17", KeyF18: "F18",
	KeyF19: "F19", KeyF20: "F20", KeyF21: "F21", KeyF22: "F22", KeyF23: "F23", KeyF24: "F24",

	KeyKp0: "Kp0", KeyKp1: "Kp1", KeyKp2: "Kp2", KeyKp3: "Kp3", KeyKp4: "Kp4",
	KeyKp5: "Kp5", KeyKp6: "Kp6", KeyKp7: "Kp7", KeyKp8: "Kp8", KeyKp9: "Kp9",
	KeyKpReturn: "KpReturn", KeyKpMinus: "KpMinus", KeyKpPlus: "KpPlus", KeyKpMultiply: "KpMultiply",
	KeyKpDivide: "KpDivide", KeyKpDelete: "KpDelete", KeyKpEqual: "KpEqual",

	KeyVolumeMute: "VolumeMute", KeyVolumeDown: "VolumeDown", KeyVolumeUp: "VolumeUp",
	KeyMediaPlayPause: "MediaPlayPause", KeyMediaNext: "MediaNext",
	KeyMediaPrevious: "MediaPrevious", KeyMediaStop: "MediaStop",
}

// Alternative spellings accepted on input only.
var keyAliases = map[string]Key{
	"enter":       KeyReturn,
	"esc":         KeyEscape,
	"altleft":     KeyAlt,
	"altright":    KeyAltGr,
	"superleft":   KeyMetaLeft,
	"superright":  KeyMetaRight,
	"kpenter":     KeyKpReturn,
	"printscreen": KeyPrintScreen,
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames)+len(keyAliases))
	for k, name := range keyNames {
		m[strings.ToLower(name)] = k
	}
	for alias, k := range keyAliases {
		m[alias] = k
	}
	return m
}()

// String returns the configuration name of the key. Codes without a name
// are printed as their decimal code, which ParseKey accepts back.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return strconv.Itoa(int(k))
}

// ParseKey resolves a configuration key name or numeric code.
func ParseKey(name string) (Key, error) {
	trimmed := strings.TrimSpace(name)
	if k, ok := keysByName[strings.ToLower(trimmed)]; ok {
		return k, nil
	}
	if code, ok := parseCode(trimmed); ok && code > 0 && code <= uint64(MaxKey) && !isButtonCode(uint16(code)) {
		return Key(code), nil
	}
	return 0, errors.Newf(errors.ErrUnknownKey, "unknown key %q", name).WithDetail("name", name)
}

// KeyNames lists every key name in sorted order.
func KeyNames() []string {
	names := make([]string, 0, len(keyNames))
	for _, name := range keyNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseCode(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	code, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, false
	}
	return code, true
}
