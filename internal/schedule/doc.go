// Package schedule records deferred device commands for Hearth Core.
//
// A Scheduler is a ledger, not a timer: tasks are recorded verbatim and
// read back in insertion order, never executed. Time and command tokens
// are stored as given, with no format validation and no conflict
// detection — two tasks for the same device and time are both retained.
//
// Execution belongs to an external timer/cron collaborator that would
// periodically read List() and dispatch due tasks.
package schedule
