package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger defines the logging interface used by the Channel.
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

// Event describes a single state change broadcast to listeners.
type Event struct {
	// ID uniquely identifies this event instance.
	ID string `json:"id"`

	// Action is the state change that occurred (e.g., "turn_on", "turn_off").
	Action string `json:"action"`

	// DeviceID is the device the action was applied to.
	DeviceID string `json:"device_id"`

	// At is when the event was emitted (UTC).
	At time.Time `json:"at"`
}

// NewEvent creates an Event for an action applied to a device.
func NewEvent(action, deviceID string) Event {
	return Event{
		ID:       GenerateID(),
		Action:   action,
		DeviceID: deviceID,
		At:       time.Now().UTC(),
	}
}

// GenerateID generates a new unique event ID.
func GenerateID() string {
	return uuid.New().String()
}

// Listener is the capability required to receive events from a Channel.
//
// Implementations must not assume they are the only listener; events are
// delivered to every registered listener regardless of which device the
// event concerns.
type Listener interface {
	HandleEvent(Event)
}

// Channel fans events out to registered listeners.
//
// Delivery is synchronous and in registration order. Duplicate
// registrations are permitted and receive the event once per registration.
//
// All public methods are thread-safe.
type Channel struct {
	mu        sync.Mutex
	listeners []Listener
	logger    Logger
}

// NewChannel creates an empty notification channel.
func NewChannel() *Channel {
	return &Channel{logger: noopLogger{}}
}

// SetLogger sets the logger for the channel.
func (c *Channel) SetLogger(logger Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = logger
}

// AddListener appends a listener to the channel.
// No uniqueness check is performed; registering the same listener twice
// means it is notified twice per event.
func (c *Channel) AddListener(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
}

// RemoveListener removes every registration that is reference-equal to l.
func (c *Channel) RemoveListener(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.listeners[:0]
	for _, existing := range c.listeners {
		if existing != l {
			kept = append(kept, existing)
		}
	}
	// Clear trailing slots so removed listeners are not retained.
	for i := len(kept); i < len(c.listeners); i++ {
		c.listeners[i] = nil
	}
	c.listeners = kept
}

// Listeners returns a snapshot of the current listener list in
// registration order.
func (c *Channel) Listeners() []Listener {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make([]Listener, len(c.listeners))
	copy(snapshot, c.listeners)
	return snapshot
}

// ListenerCount returns the number of registered listeners.
func (c *Channel) ListenerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.listeners)
}

// Notify delivers the event to every current listener, synchronously and
// in registration order.
//
// A panicking listener is recovered and logged, and delivery continues
// with the remaining listeners.
func (c *Channel) Notify(event Event) {
	c.mu.Lock()
	snapshot := make([]Listener, len(c.listeners))
	copy(snapshot, c.listeners)
	logger := c.logger
	c.mu.Unlock()

	for i, l := range snapshot {
		c.deliver(logger, event, i, l)
	}

	logger.Debug("event delivered",
		"event_id", event.ID,
		"action", event.Action,
		"device_id", event.DeviceID,
		"listeners", len(snapshot),
	)
}

// deliver invokes a single listener, recovering any panic so one faulty
// listener cannot break fan-out for the rest.
func (c *Channel) deliver(logger Logger, event Event, index int, l Listener) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("listener panicked during event delivery",
				"event_id", event.ID,
				"action", event.Action,
				"listener_index", index,
				"panic", r,
			)
		}
	}()

	l.HandleEvent(event)
}
