// Package notify provides the Notification Channel for Hearth Core.
//
// A Channel fans state-change events out to registered listeners,
// synchronously and in registration order. The Hub embeds a Channel so
// that every Hub is itself a notification source, and keeps the listener
// set equal to its device set.
//
// Listener failures are isolated: a panicking listener is recovered and
// logged, and fan-out continues with the remaining listeners. One faulty
// device cannot break notification delivery for the rest.
package notify
