package risk

import (
	"github.com/shopspring/decimal"

	"github.com/rustyeddy/sizer/trade"
)

// Parameter bounds and fixed fractions shared with the form validator.
var (
	MinRiskPercent = decimal.NewFromInt(1)
	MaxRiskPercent = decimal.NewFromInt(5)
	MinFixedRisk   = decimal.NewFromInt(10)
	MaxFixedRisk   = decimal.NewFromInt(500)

	// FIXED_AMOUNT may never exceed this fraction of the account.
	FixedRiskCap = decimal.RequireFromString("0.05")

	// LEVEL_BASED always budgets this fraction of the account.
	LevelRiskFraction = decimal.RequireFromString("0.02")

	// Position value above this fraction of the account draws a warning.
	largePositionFraction = decimal.RequireFromString("0.25")

	hundred = decimal.NewFromInt(100)
)

// Result of a successful sizing calculation. PositionSize is floor-rounded so
// EstimatedRisk never exceeds RiskAmount. A zero PositionSize is still a
// success; callers decide whether to warn about it.
type Result struct {
	PositionSize  int64
	RiskAmount    decimal.Decimal
	RiskPerUnit   decimal.Decimal
	EstimatedRisk decimal.Decimal
	Method        trade.RiskMethod
	Warnings      []string
}

// Calculate sizes a position so the estimated loss at the stop/level stays at
// or under the method's dollar risk budget. Pure: it never mutates t and the
// same input always yields the same output. Business failures come back as
// *CalcError values, never panics.
func Calculate(t trade.Trade) (Result, error) {
	if !IsSupported(t.Asset, t.Method) {
		return Result{}, calcErrf(UnsupportedMethod,
			"risk method %s is not supported for %s", t.Method, t.Asset)
	}

	budget, err := riskBudget(t)
	if err != nil {
		return Result{}, err
	}

	entry := t.EntryAnalog()
	exit := t.ExitRef()
	if !entry.IsPositive() || !exit.IsPositive() {
		return Result{}, calcErrf(InvalidInput,
			"entry %s and stop/level %s must both be positive", entry, exit)
	}
	if entry.Equal(exit) {
		return Result{}, calcErrf(ZeroRiskDistance,
			"stop/level %s equals entry %s: risk distance is zero", exit, entry)
	}
	if err := checkDirection(t.Direction, entry, exit); err != nil {
		return Result{}, err
	}

	perUnit, err := riskPerUnit(t, entry, exit)
	if err != nil {
		return Result{}, err
	}
	if !perUnit.IsPositive() {
		return Result{}, calcErrf(ZeroRiskDistance,
			"risk per unit is zero for %s", t.Symbol)
	}

	// QuoRem truncates exactly; Div rounds at 16 places and a quotient just
	// under an integer would round up and overshoot the budget.
	quotient, _ := budget.QuoRem(perUnit, 0)
	size := quotient.IntPart()
	sized := decimal.NewFromInt(size)

	res := Result{
		PositionSize:  size,
		RiskAmount:    budget,
		RiskPerUnit:   perUnit,
		EstimatedRisk: perUnit.Mul(sized),
		Method:        t.Method,
	}
	res.Warnings = warnings(t, size, sized)
	return res, nil
}

// riskBudget derives the dollar amount at risk from the chosen method.
func riskBudget(t trade.Trade) (decimal.Decimal, error) {
	if !t.AccountSize.IsPositive() {
		return decimal.Zero, calcErrf(InvalidInput,
			"account size %s must be positive", t.AccountSize)
	}

	switch t.Method {
	case trade.Percentage:
		pct := t.RiskPercentage
		if pct.LessThan(MinRiskPercent) || pct.GreaterThan(MaxRiskPercent) {
			return decimal.Zero, calcErrf(InvalidInput,
				"risk percentage %s outside [%s, %s]", pct, MinRiskPercent, MaxRiskPercent)
		}
		return t.AccountSize.Mul(pct).Div(hundred), nil

	case trade.FixedAmount:
		amt := t.FixedRiskAmount
		if amt.LessThan(MinFixedRisk) || amt.GreaterThan(MaxFixedRisk) {
			return decimal.Zero, calcErrf(InvalidInput,
				"fixed risk amount %s outside [%s, %s]", amt, MinFixedRisk, MaxFixedRisk)
		}
		if limit := t.AccountSize.Mul(FixedRiskCap); amt.GreaterThan(limit) {
			return decimal.Zero, calcErrf(InvalidInput,
				"fixed risk amount %s exceeds 5%% of account (%s)", amt, limit)
		}
		return amt, nil

	case trade.LevelBased:
		return t.AccountSize.Mul(LevelRiskFraction), nil
	}

	return decimal.Zero, calcErrf(UnsupportedMethod, "unknown risk method %s", t.Method)
}

// checkDirection enforces that the stop/level sits on the losing side of the
// entry: below it for longs, above it for shorts.
func checkDirection(dir trade.Direction, entry, exit decimal.Decimal) error {
	switch dir {
	case trade.Long:
		if exit.GreaterThanOrEqual(entry) {
			return calcErrf(DirectionConflict,
				"LONG trade requires stop/level %s below entry %s", exit, entry)
		}
	case trade.Short:
		if exit.LessThanOrEqual(entry) {
			return calcErrf(DirectionConflict,
				"SHORT trade requires stop/level %s above entry %s", exit, entry)
		}
	default:
		return calcErrf(InvalidInput, "unknown trade direction %q", dir)
	}
	return nil
}

// riskPerUnit is the dollar loss per share/contract if the stop/level is hit.
func riskPerUnit(t trade.Trade, entry, exit decimal.Decimal) (decimal.Decimal, error) {
	dist := entry.Sub(exit).Abs()

	switch t.Asset {
	case trade.Equity:
		return dist, nil

	case trade.Option:
		return dist.Mul(decimal.NewFromInt(t.Multiplier())), nil

	case trade.Future:
		if !t.TickSize.IsPositive() || !t.TickValue.IsPositive() {
			return decimal.Zero, calcErrf(InvalidInput,
				"tick size %s and tick value %s must be positive", t.TickSize, t.TickValue)
		}
		ticks := dist.Div(t.TickSize)
		return ticks.Mul(t.TickValue), nil
	}

	return decimal.Zero, calcErrf(InvalidInput, "unknown asset type %q", t.Asset)
}

// warnings collects non-fatal advisories for an otherwise successful result.
func warnings(t trade.Trade, size int64, sized decimal.Decimal) []string {
	var w []string

	var exposure decimal.Decimal
	switch t.Asset {
	case trade.Equity:
		exposure = sized.Mul(t.EntryPrice)
	case trade.Option:
		exposure = sized.Mul(t.Premium).Mul(decimal.NewFromInt(t.Multiplier()))
	case trade.Future:
		exposure = sized.Mul(t.MarginRequirement)
	}
	if exposure.GreaterThan(t.AccountSize.Mul(largePositionFraction)) {
		w = append(w, "position size large relative to account")
	}

	if t.Asset == trade.Future {
		needed := t.MarginRequirement
		if size > 1 {
			needed = t.MarginRequirement.Mul(sized)
		}
		if needed.GreaterThan(t.AccountSize) {
			w = append(w, "insufficient margin")
		}
	}

	return w
}
