package automation

import (
	"time"

	"github.com/google/uuid"
)

// Rule is one condition→action pair.
//
// Condition and Action are stored verbatim at add time; the condition
// is only parsed during evaluation, and the action token is never
// executed — it is descriptive text surfaced when the rule fires.
type Rule struct {
	// ID uniquely identifies this rule record.
	ID string `json:"id"`

	// Condition is the raw condition expression (e.g., "temperature > 75").
	Condition string `json:"condition"`

	// Action is the token surfaced when the rule fires (e.g., "turnOff(1)").
	Action string `json:"action"`

	// CreatedAt is when the rule was added (UTC).
	CreatedAt time.Time `json:"created_at"`
}

// GenerateID generates a new unique rule ID.
func GenerateID() string {
	return uuid.New().String()
}

// TemperatureSource is the view of a thermostat the engine evaluates
// against. Defining the dependency here keeps the engine decoupled from
// the device package.
type TemperatureSource interface {
	// ID identifies the device being evaluated, for logging.
	ID() string

	// Temperature returns the current temperature setting.
	Temperature() int
}
