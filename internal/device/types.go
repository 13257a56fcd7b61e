package device

import "github.com/nerrad567/hearth-core/internal/notify"

// Kind represents the specific kind of device.
type Kind string

// Kind constants.
const (
	KindLight      Kind = "light"
	KindThermostat Kind = "thermostat"
	KindDoorLock   Kind = "door"
)

// AllKinds returns all valid device kind values.
func AllKinds() []Kind {
	return []Kind{KindLight, KindThermostat, KindDoorLock}
}

// ParseKind converts a kind token to a Kind.
// Returns ErrUnknownKind for any unrecognised token.
func ParseKind(token string) (Kind, error) {
	switch Kind(token) {
	case KindLight, KindThermostat, KindDoorLock:
		return Kind(token), nil
	default:
		return "", ErrUnknownKind
	}
}

// Power state tokens shared by switchable devices.
const (
	PowerOn  = "on"
	PowerOff = "off"
)

// Lock state tokens for door locks.
const (
	StateLocked   = "locked"
	StateUnlocked = "unlocked"
)

// Device is the capability set common to every controllable unit.
//
// ID uniqueness is caller-enforced; nothing in this package deduplicates.
// Every Device is also a notify.Listener so it can observe state changes
// broadcast by its Hub.
type Device interface {
	notify.Listener

	// ID returns the opaque identifier, unique within a Hub by convention.
	ID() string

	// Kind returns the device kind.
	Kind() Kind

	// TurnOn applies the generic power-on operation.
	TurnOn()

	// TurnOff applies the generic power-off operation.
	TurnOff()

	// Status returns a human-readable status line containing the device ID
	// and a kind-appropriate state token.
	Status() string
}
