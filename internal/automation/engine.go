package automation

import (
	"sync"
	"time"
)

// Logger defines the logging interface used by the Engine.
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

// Engine stores automation rules and evaluates them against live
// thermostat state.
//
// All public methods are thread-safe.
type Engine struct {
	mu     sync.Mutex
	rules  []Rule
	logger Logger
}

// NewEngine creates an engine with no rules.
func NewEngine() *Engine {
	return &Engine{logger: noopLogger{}}
}

// SetLogger sets the logger for the engine.
func (e *Engine) SetLogger(logger Logger) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.logger = logger
}

// AddRule appends a rule and returns the stored record.
//
// The condition grammar is not validated here: a rule that will never
// fire is accepted and simply never fires. No deduplication is applied.
func (e *Engine) AddRule(conditionExpr, action string) Rule {
	rule := Rule{
		ID:        GenerateID(),
		Condition: conditionExpr,
		Action:    action,
		CreatedAt: time.Now().UTC(),
	}

	e.mu.Lock()
	e.rules = append(e.rules, rule)
	logger := e.logger
	count := len(e.rules)
	e.mu.Unlock()

	logger.Info("rule added",
		"rule_id", rule.ID,
		"condition", rule.Condition,
		"action", rule.Action,
		"total", count,
	)
	return rule
}

// Rules returns all rules in insertion order. The slice is a copy.
func (e *Engine) Rules() []Rule {
	e.mu.Lock()
	defer e.mu.Unlock()

	rules := make([]Rule, len(e.rules))
	copy(rules, e.rules)
	return rules
}

// RuleCount returns the number of stored rules.
func (e *Engine) RuleCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.rules)
}

// Evaluate checks every rule, in insertion order, against the source's
// temperature and returns the action tokens of the rules that fired.
//
// A rule fires when its condition parses as "temperature > <n>" and the
// source's temperature exceeds n. Inapplicable rules (wrong arity,
// unknown property or operator, non-integer value) are skipped without
// error. Fired actions are returned and logged but never executed.
//
// A nil source is a no-op.
func (e *Engine) Evaluate(source TemperatureSource) []string {
	if source == nil {
		return nil
	}

	e.mu.Lock()
	rules := make([]Rule, len(e.rules))
	copy(rules, e.rules)
	logger := e.logger
	e.mu.Unlock()

	temperature := source.Temperature()

	var fired []string
	for _, rule := range rules {
		cond, ok := parseCondition(rule.Condition)
		if !ok {
			logger.Debug("rule does not apply",
				"rule_id", rule.ID,
				"condition", rule.Condition,
			)
			continue
		}

		if temperature > cond.Value {
			fired = append(fired, rule.Action)
			logger.Info("rule fired",
				"rule_id", rule.ID,
				"condition", rule.Condition,
				"action", rule.Action,
				"device_id", source.ID(),
				"temperature", temperature,
			)
		}
	}

	logger.Debug("evaluation complete",
		"device_id", source.ID(),
		"temperature", temperature,
		"rules", len(rules),
		"fired", len(fired),
	)
	return fired
}
