package automation

import (
	"strconv"
	"strings"
)

// condition is the structured result of parsing a rule condition.
type condition struct {
	Property string
	Operator string
	Value    int
}

// Recognised grammar tokens. The grammar is closed: one property, one
// operator. Extending it means extending parseCondition and evaluate
// together.
const (
	propertyTemperature = "temperature"
	operatorGreaterThan = ">"
)

// parseCondition parses a raw condition expression into its structured
// form. The second return value reports whether the condition applies.
//
// A condition applies only when it has exactly three whitespace-delimited
// tokens, the property and operator are recognised, and the value parses
// as an integer. Everything else is "does not apply" — never an error,
// so one malformed rule can never abort evaluation of the rest.
func parseCondition(raw string) (condition, bool) {
	tokens := strings.Fields(raw)
	if len(tokens) != 3 {
		return condition{}, false
	}

	if tokens[0] != propertyTemperature || tokens[1] != operatorGreaterThan {
		return condition{}, false
	}

	value, err := strconv.Atoi(tokens[2])
	if err != nil {
		return condition{}, false
	}

	return condition{
		Property: tokens[0],
		Operator: tokens[1],
		Value:    value,
	}, true
}
