// Package hub provides the central coordinator for Hearth Core.
//
// # Architecture
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                             Hub                               │
//	│                                                               │
//	│  device registry ──── notify.Channel (embedded: a Hub IS a    │
//	│  (ordered, mutex)     notification source; listeners == devices)│
//	│        │                                                      │
//	│        ├── schedule.Scheduler   (deferred commands, recorded) │
//	│        └── automation.Engine    (rules, evaluated on demand)  │
//	└───────────────────────────────────────────────────────────────┘
//
// The Hub owns an ordered device registry (registration order is
// load-bearing: it drives status reporting and "first thermostat"
// lookups), embeds the notification channel it broadcasts on, and
// delegates scheduling and rule handling to its Scheduler and Engine.
//
// Every registered device is also registered as a listener, so the
// listener set always equals the device set. Mutating operations route
// through a per-device AccessRelay, giving each state change a logged
// mediation point.
//
// Lookup misses (TurnOn, TurnOff, SetSchedule on an unknown ID) are
// silent no-ops by contract; they log at debug level only.
package hub
