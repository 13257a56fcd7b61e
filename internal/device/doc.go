// Package device provides the device model for Hearth Core.
//
// A Device is one controllable unit in the household: a light, a
// thermostat, or a door lock. The kind set is closed; each kind carries
// its own status semantics:
//
//   - Light: reports on/off power state.
//   - Thermostat: reports its temperature setting, not power state.
//     The override is intentional — a thermostat's interesting state is
//     the setpoint.
//   - DoorLock: reports locked/unlocked and starts locked. Lock and
//     Unlock are separate operations, deliberately not reachable through
//     the generic TurnOn/TurnOff path.
//
// Devices are created through New (the factory); an unrecognised kind is
// a hard error, never a fallback device. Every Device is also a
// notify.Listener, so a Hub can keep its listener set equal to its
// device set.
//
// AccessRelay wraps a Device and logs an access-mediation event before
// delegating mutating operations. It performs no access control itself;
// it exists so a real authorisation check can later be inserted without
// touching Device or Hub.
package device
