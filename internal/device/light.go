package device

import (
	"fmt"
	"sync"

	"github.com/nerrad567/hearth-core/internal/notify"
)

// Light is a switchable light. Its status is its power state.
//
// All public methods are thread-safe.
type Light struct {
	mu    sync.Mutex
	id    string
	power string
}

// NewLight creates a light in the off state.
func NewLight(id string) *Light {
	return &Light{id: id, power: PowerOff}
}

// ID returns the light's identifier.
func (l *Light) ID() string { return l.id }

// Kind returns KindLight.
func (l *Light) Kind() Kind { return KindLight }

// TurnOn switches the light on.
func (l *Light) TurnOn() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.power = PowerOn
}

// TurnOff switches the light off.
func (l *Light) TurnOff() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.power = PowerOff
}

// Status reports the light's power state.
func (l *Light) Status() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fmt.Sprintf("Light %s is %s", l.id, l.power)
}

// HandleEvent observes a hub event. Lights do not react to other
// devices' state changes; this is the listener contract point.
func (l *Light) HandleEvent(notify.Event) {}
