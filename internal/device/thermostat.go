package device

import (
	"fmt"
	"sync"

	"github.com/nerrad567/hearth-core/internal/notify"
)

// defaultTemperature is the setpoint a new thermostat starts at.
const defaultTemperature = 70

// Thermostat is a switchable climate device with a temperature setting.
//
// Status intentionally reports the temperature rather than the power
// state: the setpoint is the state callers care about. The power state
// is still tracked and mutated through TurnOn/TurnOff.
//
// All public methods are thread-safe.
type Thermostat struct {
	mu          sync.Mutex
	id          string
	power       string
	temperature int
}

// NewThermostat creates a thermostat, off, set to the default temperature.
func NewThermostat(id string) *Thermostat {
	return &Thermostat{id: id, power: PowerOff, temperature: defaultTemperature}
}

// ID returns the thermostat's identifier.
func (t *Thermostat) ID() string { return t.id }

// Kind returns KindThermostat.
func (t *Thermostat) Kind() Kind { return KindThermostat }

// TurnOn switches the thermostat on.
func (t *Thermostat) TurnOn() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.power = PowerOn
}

// TurnOff switches the thermostat off.
func (t *Thermostat) TurnOff() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.power = PowerOff
}

// SetTemperature updates the temperature setting.
func (t *Thermostat) SetTemperature(degrees int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.temperature = degrees
}

// Temperature returns the current temperature setting.
func (t *Thermostat) Temperature() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.temperature
}

// Status reports the temperature setting, not the power state.
func (t *Thermostat) Status() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fmt.Sprintf("Thermostat %s is set to %d degrees", t.id, t.temperature)
}

// HandleEvent observes a hub event. Thermostats do not react to other
// devices' state changes; this is the listener contract point.
func (t *Thermostat) HandleEvent(notify.Event) {}
