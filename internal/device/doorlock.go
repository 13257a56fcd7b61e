package device

import (
	"fmt"
	"sync"

	"github.com/nerrad567/hearth-core/internal/notify"
)

// DoorLock is a lockable door. Its status is the lock state, and a new
// lock starts locked rather than in the generic off state.
//
// Lock and Unlock are the operations that change the lock state. The
// generic TurnOn/TurnOff path deliberately does not operate the lock:
// power semantics and lock semantics are kept separate so a hub-wide
// "turn everything off" can never unlock a door.
//
// All public methods are thread-safe.
type DoorLock struct {
	mu    sync.Mutex
	id    string
	state string
}

// NewDoorLock creates a door lock in the locked state.
func NewDoorLock(id string) *DoorLock {
	return &DoorLock{id: id, state: StateLocked}
}

// ID returns the lock's identifier.
func (d *DoorLock) ID() string { return d.id }

// Kind returns KindDoorLock.
func (d *DoorLock) Kind() Kind { return KindDoorLock }

// TurnOn is the generic power-on operation. It does not unlock the door.
func (d *DoorLock) TurnOn() {}

// TurnOff is the generic power-off operation. It does not lock the door.
func (d *DoorLock) TurnOff() {}

// Lock engages the lock.
func (d *DoorLock) Lock() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = StateLocked
}

// Unlock disengages the lock.
func (d *DoorLock) Unlock() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = StateUnlocked
}

// Status reports the lock state.
func (d *DoorLock) Status() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return fmt.Sprintf("DoorLock %s is %s", d.id, d.state)
}

// HandleEvent observes a hub event. Door locks do not react to other
// devices' state changes; this is the listener contract point.
func (d *DoorLock) HandleEvent(notify.Event) {}
