package deinflect

import (
	"fmt"
	"strings"
)

// UnknownConditionError reports a rule referencing a condition identifier
// that no installed descriptor declares. Index is the position of the
// identifier within the rule's condition list.
type UnknownConditionError struct {
	Name  string
	Index int
}

func (e *UnknownConditionError) Error() string {
	return fmt.Sprintf("unknown condition %q (at index %d)", e.Name, e.Index)
}

// SubConditionCycleError reports a set of conditions whose sub-condition
// declarations are mutually recursive and can therefore never be resolved
// to flags.
type SubConditionCycleError struct {
	Identifiers []string
}

func (e *SubConditionCycleError) Error() string {
	return fmt.Sprintf("cyclic sub-conditions: %s", strings.Join(e.Identifiers, ", "))
}

// TooManyConditionsError reports that installing a descriptor would exceed
// the 32 leaf condition flags a transformer can hold.
type TooManyConditionsError struct {
	Limit int
}

func (e *TooManyConditionsError) Error() string {
	return fmt.Sprintf("too many conditions: a transformer holds at most %d leaf flags", e.Limit)
}

// InvalidPatternError reports a rule pattern that failed to compile.
type InvalidPatternError struct {
	Transform string
	RuleIndex int
	Cause     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern in transform %q, rule %d: %v", e.Transform, e.RuleIndex, e.Cause)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Cause
}
