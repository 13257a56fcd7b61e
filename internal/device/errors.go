package device

import "errors"

// Domain errors for the device package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, device.ErrUnknownKind) {
//	    // handle unrecognised device kind
//	}
var (
	// ErrUnknownKind is returned when a device kind token is not recognised.
	ErrUnknownKind = errors.New("device: unknown kind")
)
