package device

import "github.com/nerrad567/hearth-core/internal/notify"

// Logger defines the logging interface used by the AccessRelay.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// AccessRelay wraps exactly one Device and logs an access-mediation
// event before delegating mutating operations. Reads delegate silently.
//
// The relay always permits; it is the interception point where a real
// authorisation or auditing check would slot in without touching Device
// or Hub. Keep it thin.
type AccessRelay struct {
	device Device
	logger Logger
}

// NewAccessRelay wraps a device. A nil logger disables mediation logging.
func NewAccessRelay(d Device, logger Logger) *AccessRelay {
	if logger == nil {
		logger = noopLogger{}
	}
	return &AccessRelay{device: d, logger: logger}
}

// Unwrap returns the wrapped device.
func (r *AccessRelay) Unwrap() Device { return r.device }

// ID returns the wrapped device's identifier.
func (r *AccessRelay) ID() string { return r.device.ID() }

// Kind returns the wrapped device's kind.
func (r *AccessRelay) Kind() Kind { return r.device.Kind() }

// TurnOn logs the mediated access and delegates to the wrapped device.
func (r *AccessRelay) TurnOn() {
	r.logger.Info("access mediated",
		"operation", "turn_on",
		"device_id", r.device.ID(),
		"kind", r.device.Kind(),
	)
	r.device.TurnOn()
}

// TurnOff logs the mediated access and delegates to the wrapped device.
func (r *AccessRelay) TurnOff() {
	r.logger.Info("access mediated",
		"operation", "turn_off",
		"device_id", r.device.ID(),
		"kind", r.device.Kind(),
	)
	r.device.TurnOff()
}

// Status delegates directly with no side effect.
func (r *AccessRelay) Status() string { return r.device.Status() }

// HandleEvent delegates event delivery to the wrapped device.
func (r *AccessRelay) HandleEvent(event notify.Event) {
	r.device.HandleEvent(event)
}
