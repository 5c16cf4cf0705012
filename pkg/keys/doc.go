// Package keys names the physical inputs keyremap understands.
//
// A Key holds a Linux evdev KEY_* code and a Button holds an evdev BTN_*
// code. Those numeric codes are what rules match on and what the
// synthesizer injects; the names exist for configuration files and
// diagnostics only.
//
// # Naming
//
// Key names follow the vocabulary used by existing keyremap configuration
// files:
//
//	KeyA .. KeyZ          letters
//	Num0 .. Num9          top-row digits
//	F1 .. F24             function keys
//	ControlLeft, ShiftLeft, Alt, AltGr, MetaLeft, ...
//	Return, Escape, Space, Tab, Backspace, UpArrow, ...
//	Kp0 .. Kp9, KpReturn, KpPlus, ...
//
// Button names are Left, Right, Middle, Side, Extra, Forward, Back and Task.
//
// Lookups are case-insensitive. A decimal or 0x-prefixed literal is
// accepted in place of a name for codes that have none.
package keys
