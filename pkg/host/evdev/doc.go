// Package evdev is the Linux host runtime. It reads keyboards and mice from
// /dev/input/event*, optionally grabbing them for exclusive access, and owns
// a uinput virtual device through which pass-through events are forwarded
// and synthetic keys are injected.
//
// Reading needs membership of the input group (or root); creating the
// virtual device needs write access to /dev/uinput.
package evdev
