// Package rules holds the ordered, immutable remap rule table.
//
// # Rule Priority
//
// Rules are evaluated in table order. The first enabled rule whose input
// selector equals the event's origin wins; later rules are never consulted
// for that event, even when they would match as well. Disabled rules are
// skipped without shifting the priority of the rules that follow them.
//
// # Actions
//
// A rule's action is one of:
//
//   - block: swallow the physical input, emit nothing
//   - key: replace the input with a single synthetic key
//   - combination: emit an ordered chord, pressed in order and released in
//     reverse order
//
// A combination with no keys behaves as a block.
//
// # Immutability
//
// A Table copies the rules it is built from and only hands out copies, so
// once constructed it can be shared by reference without locking.
package rules
