// Package form is the validation engine behind the calculator form: per-field
// checks, cross-field directional rules, and the aggregate submittable verdict
// a UI binds its Calculate button to. It is UI-framework-agnostic and purely
// synchronous.
package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/sizer/risk"
	"github.com/rustyeddy/sizer/trade"
)

// MaxSymbolLen bounds symbol-ish text fields.
const MaxSymbolLen = 24

// Context carries what a single-field check needs from the rest of the form:
// the active asset/method combination and sibling raw values for cross-field
// rules (stop vs entry, fixed risk vs account size).
type Context struct {
	Asset    trade.AssetType
	Method   trade.RiskMethod
	Siblings map[trade.FieldName]string
}

func (c Context) sibling(name trade.FieldName) string {
	return strings.TrimSpace(c.Siblings[name])
}

// FieldState is the validation outcome for one field. An empty value is
// incomplete, never invalid: Filled=false, Valid=true. Only a non-empty value
// that fails a rule sets Valid=false.
type FieldState struct {
	Name     trade.FieldName
	Raw      string
	Filled   bool
	Valid    bool
	Required bool
	Message  string
}

// ValidateField checks one raw value in context. It never touches sibling
// states; callers re-run it for dependent fields when a referenced sibling
// changes.
func ValidateField(name trade.FieldName, raw string, ctx Context) FieldState {
	fs := FieldState{
		Name:     name,
		Raw:      raw,
		Valid:    true,
		Required: risk.Requires(ctx.Asset, ctx.Method, name),
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return fs
	}
	fs.Filled = true

	if msg := checkValue(name, value, ctx); msg != "" {
		fs.Valid = false
		fs.Message = msg
	}
	return fs
}

func checkValue(name trade.FieldName, value string, ctx Context) string {
	switch name {
	case trade.FieldSymbol:
		if len(value) > MaxSymbolLen {
			return fmt.Sprintf("symbol longer than %d characters", MaxSymbolLen)
		}
		return ""

	case trade.FieldTradeDirection:
		if _, ok := trade.ParseDirection(strings.ToUpper(value)); !ok {
			return fmt.Sprintf("trade direction must be %s or %s", trade.Long, trade.Short)
		}
		return ""

	case trade.FieldMultiplier:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n <= 0 {
			return "contract multiplier must be a positive whole number"
		}
		return ""

	case trade.FieldAccountSize, trade.FieldEntryPrice, trade.FieldPremium,
		trade.FieldUnderlyingPrice, trade.FieldTickSize, trade.FieldTickValue,
		trade.FieldMargin:
		_, msg := parsePositive(name, value)
		return msg

	case trade.FieldRiskPercentage:
		d, msg := parsePositive(name, value)
		if msg != "" {
			return msg
		}
		if d.LessThan(risk.MinRiskPercent) || d.GreaterThan(risk.MaxRiskPercent) {
			return fmt.Sprintf("risk percentage must be between %s and %s",
				risk.MinRiskPercent, risk.MaxRiskPercent)
		}
		return ""

	case trade.FieldFixedRisk:
		d, msg := parsePositive(name, value)
		if msg != "" {
			return msg
		}
		if d.LessThan(risk.MinFixedRisk) || d.GreaterThan(risk.MaxFixedRisk) {
			return fmt.Sprintf("fixed risk amount must be between $%s and $%s",
				risk.MinFixedRisk, risk.MaxFixedRisk)
		}
		if acct, ok := siblingDecimal(ctx, trade.FieldAccountSize); ok {
			if limit := acct.Mul(risk.FixedRiskCap); d.GreaterThan(limit) {
				return fmt.Sprintf("fixed risk amount $%s exceeds 5%% of account size ($%s)", d, limit)
			}
		}
		return ""

	case trade.FieldStopLoss:
		d, msg := parsePositive(name, value)
		if msg != "" {
			return msg
		}
		return directionalMessage(ctx, trade.FieldStopLoss, d, stopReference(ctx.Asset))

	case trade.FieldLevel:
		d, msg := parsePositive(name, value)
		if msg != "" {
			return msg
		}
		return directionalMessage(ctx, trade.FieldLevel, d, levelReference(ctx.Asset))
	}

	return ""
}

// stopReference is the field a stop loss is compared against.
func stopReference(asset trade.AssetType) trade.FieldName {
	if asset == trade.Option {
		return trade.FieldPremium
	}
	return trade.FieldEntryPrice
}

// levelReference is the field a support/resistance level is compared against.
// Options size level-based trades off the underlying, not the premium.
func levelReference(asset trade.AssetType) trade.FieldName {
	if asset == trade.Option {
		return trade.FieldUnderlyingPrice
	}
	return trade.FieldEntryPrice
}

// directionalMessage enforces the cross-field rule: the stop/level must sit on
// the losing side of the reference price for the chosen direction. Skipped
// when the reference or direction is not yet usable; the reference field's own
// validation covers that. The message names both participating fields.
func directionalMessage(ctx Context, name trade.FieldName, value decimal.Decimal, ref trade.FieldName) string {
	refVal, ok := siblingDecimal(ctx, ref)
	if !ok {
		return ""
	}
	dir, ok := trade.ParseDirection(strings.ToUpper(ctx.sibling(trade.FieldTradeDirection)))
	if !ok {
		return ""
	}

	switch dir {
	case trade.Long:
		if value.GreaterThanOrEqual(refVal) {
			return fmt.Sprintf("%s (%s) must be below %s (%s) for a LONG trade",
				name, value, ref, refVal)
		}
	case trade.Short:
		if value.LessThanOrEqual(refVal) {
			return fmt.Sprintf("%s (%s) must be above %s (%s) for a SHORT trade",
				name, value, ref, refVal)
		}
	}
	return ""
}

func parsePositive(name trade.FieldName, value string) (decimal.Decimal, string) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Sprintf("%s must be a number", name)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Sprintf("%s must be greater than zero", name)
	}
	return d, ""
}

func siblingDecimal(ctx Context, name trade.FieldName) (decimal.Decimal, bool) {
	raw := ctx.sibling(name)
	if raw == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}
