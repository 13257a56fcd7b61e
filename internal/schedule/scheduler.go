package schedule

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nerrad567/hearth-core/internal/device"
)

// Logger defines the logging interface used by the Scheduler.
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

// Task is one recorded deferred command. Immutable once recorded.
//
// Time and Command are opaque tokens stored verbatim; the scheduler
// attaches no meaning to them.
type Task struct {
	// ID uniquely identifies this task record.
	ID string `json:"id"`

	// Device is the target device. Referenced, not owned.
	Device device.Device `json:"-"`

	// DeviceID is the target device's identifier, for reporting.
	DeviceID string `json:"device_id"`

	// Time is the caller-supplied time token (e.g., "06:00").
	Time string `json:"time"`

	// Command is the caller-supplied command token (e.g., "Turn On").
	Command string `json:"command"`

	// CreatedAt is when the task was recorded (UTC).
	CreatedAt time.Time `json:"created_at"`
}

// GenerateID generates a new unique task ID.
func GenerateID() string {
	return uuid.New().String()
}

// Scheduler records deferred commands in insertion order.
//
// All public methods are thread-safe.
type Scheduler struct {
	mu     sync.Mutex
	tasks  []Task
	logger Logger
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{logger: noopLogger{}}
}

// SetLogger sets the logger for the scheduler.
func (s *Scheduler) SetLogger(logger Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger = logger
}

// Add records a deferred command and returns the recorded task.
//
// Nothing is validated and nothing is executed; duplicates are retained.
func (s *Scheduler) Add(dev device.Device, timeSpec, command string) Task {
	task := Task{
		ID:        GenerateID(),
		Device:    dev,
		DeviceID:  dev.ID(),
		Time:      timeSpec,
		Command:   command,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	logger := s.logger
	count := len(s.tasks)
	s.mu.Unlock()

	logger.Info("command scheduled",
		"task_id", task.ID,
		"device_id", task.DeviceID,
		"time", task.Time,
		"command", task.Command,
		"total", count,
	)
	return task
}

// List returns all recorded tasks in insertion order.
// The returned slice is a copy; reading it never consumes the tasks.
func (s *Scheduler) List() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// Count returns the number of recorded tasks.
func (s *Scheduler) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
