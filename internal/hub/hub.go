package hub

import (
	"strings"
	"sync"

	"github.com/nerrad567/hearth-core/internal/automation"
	"github.com/nerrad567/hearth-core/internal/device"
	"github.com/nerrad567/hearth-core/internal/notify"
	"github.com/nerrad567/hearth-core/internal/schedule"
)

// Logger defines the logging interface used by the Hub.
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

// Actions broadcast on the notification channel.
const (
	ActionTurnOn  = "turn_on"
	ActionTurnOff = "turn_off"
)

// Hub composes the device registry, notification channel, scheduler and
// automation engine behind a single control surface.
//
// The embedded Channel makes every Hub a notification source in its own
// right; AddDevice keeps the channel's listener set equal to the device
// registry.
//
// All public methods are thread-safe.
type Hub struct {
	*notify.Channel

	mu        sync.Mutex
	devices   []device.Device
	relays    []*device.AccessRelay
	scheduler *schedule.Scheduler
	engine    *automation.Engine
	logger    Logger
}

// New creates an empty hub.
func New() *Hub {
	return &Hub{
		Channel:   notify.NewChannel(),
		scheduler: schedule.NewScheduler(),
		engine:    automation.NewEngine(),
		logger:    noopLogger{},
	}
}

// SetLogger sets the logger for the hub and its components.
func (h *Hub) SetLogger(logger Logger) {
	h.mu.Lock()
	h.logger = logger
	h.mu.Unlock()

	h.Channel.SetLogger(logger)
	h.scheduler.SetLogger(logger)
	h.engine.SetLogger(logger)
}

// Scheduler returns the hub's scheduler, for reading recorded commands.
func (h *Hub) Scheduler() *schedule.Scheduler { return h.scheduler }

// Engine returns the hub's automation engine, for reading stored rules.
func (h *Hub) Engine() *automation.Engine { return h.engine }

// AddDevice creates a device of the given kind and registers it, both
// in the registry and as a notification listener.
//
// IDs are not deduplicated; registering two devices with the same ID is
// permitted and lookups resolve to the first registered. An unknown
// kind token is a hard error and registers nothing.
func (h *Hub) AddDevice(kind, id string) error {
	dev, err := device.NewFromToken(kind, id)
	if err != nil {
		h.logger.Error("device registration refused", "kind", kind, "id", id, "error", err)
		return err
	}

	h.mu.Lock()
	h.devices = append(h.devices, dev)
	h.relays = append(h.relays, device.NewAccessRelay(dev, h.logger))
	count := len(h.devices)
	h.mu.Unlock()

	h.AddListener(dev)

	h.logger.Info("device registered",
		"kind", dev.Kind(),
		"id", dev.ID(),
		"total", count,
	)
	return nil
}

// TurnOn switches on the first device with the given ID and notifies
// all listeners. Unknown IDs are a silent no-op.
func (h *Hub) TurnOn(id string) {
	relay, ok := h.findRelay(id)
	if !ok {
		h.logger.Debug("turn on ignored, device not found", "id", id)
		return
	}

	relay.TurnOn()
	h.Notify(notify.NewEvent(ActionTurnOn, id))
}

// TurnOff switches off the first device with the given ID and notifies
// all listeners. Unknown IDs are a silent no-op.
func (h *Hub) TurnOff(id string) {
	relay, ok := h.findRelay(id)
	if !ok {
		h.logger.Debug("turn off ignored, device not found", "id", id)
		return
	}

	relay.TurnOff()
	h.Notify(notify.NewEvent(ActionTurnOff, id))
}

// SetSchedule records a deferred command for the device with the given
// ID. Unknown IDs are a silent no-op.
func (h *Hub) SetSchedule(id, timeSpec, command string) {
	dev, ok := h.findDevice(id)
	if !ok {
		h.logger.Debug("schedule ignored, device not found", "id", id)
		return
	}

	h.scheduler.Add(dev, timeSpec, command)
}

// AddTrigger stores a condition→action rule. Delegation is
// unconditional; no device lookup is involved.
func (h *Hub) AddTrigger(condition, action string) {
	h.engine.AddRule(condition, action)
}

// CheckTriggers evaluates all rules against the first thermostat in
// registration order and returns the fired action tokens.
//
// Only that one thermostat is ever consulted; additional thermostats
// are deliberately ignored. With no thermostat registered this is a
// no-op returning nil.
func (h *Hub) CheckTriggers() []string {
	thermostat, ok := h.firstThermostat()
	if !ok {
		h.logger.Debug("trigger check skipped, no thermostat registered")
		return nil
	}

	return h.engine.Evaluate(thermostat)
}

// StatusReport returns one status line per registered device, in
// registration order, joined with newlines.
func (h *Hub) StatusReport() string {
	h.mu.Lock()
	relays := make([]*device.AccessRelay, len(h.relays))
	copy(relays, h.relays)
	h.mu.Unlock()

	lines := make([]string, 0, len(relays))
	for _, relay := range relays {
		lines = append(lines, relay.Status())
	}
	return strings.Join(lines, "\n")
}

// Devices returns a snapshot of the registry in registration order.
func (h *Hub) Devices() []device.Device {
	h.mu.Lock()
	defer h.mu.Unlock()

	snapshot := make([]device.Device, len(h.devices))
	copy(snapshot, h.devices)
	return snapshot
}

// DeviceCount returns the number of registered devices.
func (h *Hub) DeviceCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.devices)
}

// findDevice returns the first registered device with the given ID.
func (h *Hub) findDevice(id string) (device.Device, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, dev := range h.devices {
		if dev.ID() == id {
			return dev, true
		}
	}
	return nil, false
}

// findRelay returns the access relay for the first registered device
// with the given ID. Mutations route through the relay so every state
// change has a logged mediation point.
func (h *Hub) findRelay(id string) (*device.AccessRelay, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, dev := range h.devices {
		if dev.ID() == id {
			return h.relays[i], true
		}
	}
	return nil, false
}

// firstThermostat returns the first thermostat in registration order.
func (h *Hub) firstThermostat() (*device.Thermostat, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, dev := range h.devices {
		if thermostat, ok := dev.(*device.Thermostat); ok {
			return thermostat, true
		}
	}
	return nil, false
}
