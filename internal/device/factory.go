package device

import "fmt"

// New constructs a device of the given kind.
//
// An unrecognised kind is a hard error (ErrUnknownKind), never a
// default or fallback device.
func New(kind Kind, id string) (Device, error) {
	switch kind {
	case KindLight:
		return NewLight(id), nil
	case KindThermostat:
		return NewThermostat(id), nil
	case KindDoorLock:
		return NewDoorLock(id), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// NewFromToken constructs a device from a raw kind token, such as one
// read from configuration or a caller-facing API.
func NewFromToken(token, id string) (Device, error) {
	kind, err := ParseKind(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, token)
	}
	return New(kind, id)
}
