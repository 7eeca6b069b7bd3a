package risk

import "fmt"

// ErrorKind classifies expected business failures from Calculate.
type ErrorKind string

const (
	ZeroRiskDistance  ErrorKind = "ZERO_RISK_DISTANCE"
	UnsupportedMethod ErrorKind = "UNSUPPORTED_METHOD"
	DirectionConflict ErrorKind = "DIRECTION_CONFLICT"
	InvalidInput      ErrorKind = "INVALID_INPUT"
)

// CalcError is a typed calculation failure. These are expected outcomes
// (zero stop distance, out-of-range parameter), returned as values and
// safe to show to the user verbatim.
type CalcError struct {
	Kind    ErrorKind
	Message string
}

func (e *CalcError) Error() string {
	return e.Message
}

func calcErrf(kind ErrorKind, format string, args ...any) *CalcError {
	return &CalcError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
