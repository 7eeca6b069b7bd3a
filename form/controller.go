package form

import (
	"github.com/rustyeddy/sizer/trade"
)

// Event is a form mutation fed into Controller.Apply. One concrete event type
// per user action keeps the reduce step a single synchronous pass, so a field
// change can never re-fire observers mid-update.
type Event interface {
	isEvent()
}

// FieldChanged carries one edited field and its new raw value.
type FieldChanged struct {
	Name  trade.FieldName
	Value string
}

// MethodChanged switches the active risk method; field values survive.
type MethodChanged struct {
	Method trade.RiskMethod
}

// AssetChanged switches the active asset type; field values survive.
type AssetChanged struct {
	Asset trade.AssetType
}

// FormCleared resets all field values to empty, keeping asset and method.
type FormCleared struct{}

func (FieldChanged) isEvent()  {}
func (MethodChanged) isEvent() {}
func (AssetChanged) isEvent()  {}
func (FormCleared) isEvent()   {}

// crossDeps lists which fields must be revalidated when the key field
// changes, beyond the key field itself. The graph is static and one level
// deep: directional checks read their reference price and the direction,
// and the fixed risk cap reads the account size.
var crossDeps = map[trade.FieldName][]trade.FieldName{
	trade.FieldEntryPrice:      {trade.FieldStopLoss, trade.FieldLevel},
	trade.FieldPremium:         {trade.FieldStopLoss},
	trade.FieldUnderlyingPrice: {trade.FieldLevel},
	trade.FieldAccountSize:     {trade.FieldFixedRisk},
	trade.FieldTradeDirection:  {trade.FieldStopLoss, trade.FieldLevel},
}

// Controller owns the validation state for one open calculator tab. Each tab
// constructs its own Controller; instances share nothing, so no locking.
type Controller struct {
	asset  trade.AssetType
	method trade.RiskMethod
	values map[trade.FieldName]string
	state  State
}

// NewController starts a tab in the Incomplete phase with no values entered.
func NewController(asset trade.AssetType, method trade.RiskMethod) *Controller {
	c := &Controller{
		asset:  asset,
		method: method,
		values: make(map[trade.FieldName]string),
	}
	c.state = Compute(c.values, asset, method)
	return c
}

// Apply reduces one event into the next form state and returns it.
func (c *Controller) Apply(ev Event) State {
	switch e := ev.(type) {
	case FieldChanged:
		c.values[e.Name] = e.Value
		c.revalidate(e.Name)

	case MethodChanged:
		c.method = e.Method
		c.state = Compute(c.values, c.asset, c.method)

	case AssetChanged:
		c.asset = e.Asset
		c.state = Compute(c.values, c.asset, c.method)

	case FormCleared:
		c.values = make(map[trade.FieldName]string)
		c.state = Compute(c.values, c.asset, c.method)
	}
	return c.state
}

// revalidate handles a single field edit incrementally: re-check the edited
// field and its static dependents, then re-derive the aggregate flags. Fields
// outside the tracked set only have their value stored.
func (c *Controller) revalidate(name trade.FieldName) {
	if c.state.Summary != "" {
		// Unsupported combination: nothing is tracked until method/asset changes.
		return
	}

	ctx := Context{Asset: c.asset, Method: c.method, Siblings: c.values}
	targets := append([]trade.FieldName{name}, crossDeps[name]...)
	for _, t := range targets {
		if _, tracked := c.state.Fields[t]; !tracked {
			continue
		}
		c.state.Fields[t] = ValidateField(t, c.values[t], ctx)
	}
	c.state.recompute()
}

// State returns the current aggregate form state.
func (c *Controller) State() State {
	return c.state
}

// Submittable is the button-enablement flag the UI binds.
func (c *Controller) Submittable() bool {
	return c.state.Submittable
}

// Value returns the stored raw value for a field, filled or not.
func (c *Controller) Value(name trade.FieldName) string {
	return c.values[name]
}
