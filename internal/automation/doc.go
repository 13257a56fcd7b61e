// Package automation provides the rule engine for Hearth Core.
//
// An Engine stores condition→action rules and evaluates them, on
// demand, against live thermostat state. The condition grammar is
// deliberately tiny: exactly three space-separated tokens,
//
//	<property> <operator> <value>
//
// of which only "temperature > <integer>" is recognised. Anything else
// — wrong arity, unknown property or operator, a value that is not an
// integer — makes the rule inapplicable: it silently never fires, and
// evaluation of the remaining rules continues. The fail-soft policy is
// an explicit parser branch, not an accident of string splitting.
//
// Fired actions are surfaced (returned and logged) as descriptive
// tokens only; the engine never executes or dispatches them.
package automation
