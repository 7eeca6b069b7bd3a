package form

import (
	"fmt"

	"github.com/rustyeddy/sizer/risk"
	"github.com/rustyeddy/sizer/trade"
)

// Phase is the coarse form lifecycle the UI cares about.
type Phase string

const (
	Incomplete  Phase = "INCOMPLETE"  // required fields missing, nothing invalid
	Invalid     Phase = "INVALID"     // at least one error
	Submittable Phase = "SUBMITTABLE" // complete and error-free
)

// State aggregates every tracked field's validation into the single verdict
// the UI binds button enablement to. Invariant after every recompute:
// Submittable == !HasErrors && RequiredFilled.
type State struct {
	Asset  trade.AssetType
	Method trade.RiskMethod

	Fields map[trade.FieldName]FieldState

	HasErrors      bool
	RequiredFilled bool
	Submittable    bool

	// Summary is the form-level message for an unsupported (asset, method)
	// combination; field problems never land here.
	Summary string
}

// Phase folds the three booleans into the UI lifecycle phase.
func (s State) Phase() Phase {
	switch {
	case s.Submittable:
		return Submittable
	case s.HasErrors:
		return Invalid
	default:
		return Incomplete
	}
}

// Messages returns the inline error text per field, for display next to the
// offending widgets. The unsupported-method summary is not included.
func (s State) Messages() map[trade.FieldName]string {
	out := make(map[trade.FieldName]string)
	for name, fs := range s.Fields {
		if fs.Message != "" {
			out[name] = fs.Message
		}
	}
	return out
}

// optionalFields are validated when filled but never block completeness.
// The option contract multiplier has a default, so it is optional.
var optionalFields = map[trade.AssetType][]trade.FieldName{
	trade.Option: {trade.FieldMultiplier},
}

// trackedFields is the required set plus the combo's optional fields. Fields
// outside this set keep their values but are dropped from error consideration,
// which is what clears stale errors on an asset or method switch.
func trackedFields(asset trade.AssetType, method trade.RiskMethod) []trade.FieldName {
	fields := risk.RequiredFields(asset, method)
	return append(fields, optionalFields[asset]...)
}

// Compute validates every tracked field against the current values and
// aggregates the result. Wholesale recomputation: used on asset/method
// switches, form clears, and as the reference behavior the controller's
// incremental path must agree with.
func Compute(values map[trade.FieldName]string, asset trade.AssetType, method trade.RiskMethod) State {
	s := State{
		Asset:  asset,
		Method: method,
		Fields: make(map[trade.FieldName]FieldState),
	}

	if !risk.IsSupported(asset, method) {
		s.Summary = fmt.Sprintf("risk method %s is not supported for %s", method, asset)
		s.recompute()
		return s
	}

	ctx := Context{Asset: asset, Method: method, Siblings: values}
	for _, name := range trackedFields(asset, method) {
		s.Fields[name] = ValidateField(name, values[name], ctx)
	}
	s.recompute()
	return s
}

// recompute re-derives the aggregate flags from the field map. Every state
// transition funnels through here so the submittable invariant always holds.
func (s *State) recompute() {
	s.HasErrors = s.Summary != ""
	s.RequiredFilled = true
	for _, fs := range s.Fields {
		if !fs.Valid {
			s.HasErrors = true
		}
		if fs.Required && !fs.Filled {
			s.RequiredFilled = false
		}
	}
	s.Submittable = !s.HasErrors && s.RequiredFilled
}
