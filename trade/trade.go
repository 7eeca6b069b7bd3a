package trade

import (
	"github.com/shopspring/decimal"
)

// AssetType selects the Trade variant.
type AssetType string

const (
	Equity AssetType = "EQUITY"
	Option AssetType = "OPTION"
	Future AssetType = "FUTURE"
)

// RiskMethod selects how the dollar risk budget is derived.
type RiskMethod string

const (
	Percentage  RiskMethod = "PERCENTAGE"
	FixedAmount RiskMethod = "FIXED_AMOUNT"
	LevelBased  RiskMethod = "LEVEL_BASED"
)

// Direction of the planned trade.
type Direction string

const (
	Long  Direction = "LONG"
	Short Direction = "SHORT"
)

// DefaultContractMultiplier applies when an option trade does not set one.
const DefaultContractMultiplier int64 = 100

// Trade is a tagged union over the three instrument variants. Asset picks the
// variant; only that variant's fields are meaningful. Method picks which of the
// method-specific fields (RiskPercentage, FixedRiskAmount, StopLossPrice,
// SupportResistanceLevel) are in play.
//
// All money and price fields are decimals so repeated arithmetic never drifts.
type Trade struct {
	Asset     AssetType
	Method    RiskMethod
	Direction Direction

	AccountSize decimal.Decimal
	Symbol      string

	// Equity and Future entry; unused for Option.
	EntryPrice decimal.Decimal

	// Option only.
	Premium            decimal.Decimal
	ContractMultiplier int64
	UnderlyingPrice    decimal.Decimal // LEVEL_BASED sizing is driven off the underlying

	// Future only.
	TickSize          decimal.Decimal
	TickValue         decimal.Decimal
	MarginRequirement decimal.Decimal

	// Method-specific parameters.
	RiskPercentage         decimal.Decimal // PERCENTAGE
	FixedRiskAmount        decimal.Decimal // FIXED_AMOUNT
	StopLossPrice          decimal.Decimal // PERCENTAGE, FIXED_AMOUNT
	SupportResistanceLevel decimal.Decimal // LEVEL_BASED
}

// Multiplier returns the contract multiplier, falling back to the standard 100.
func (t Trade) Multiplier() int64 {
	if t.ContractMultiplier > 0 {
		return t.ContractMultiplier
	}
	return DefaultContractMultiplier
}

// EntryAnalog is the price the stop/level is compared against: entry price for
// equities and futures, premium for option stop-loss methods, underlying price
// for option level-based sizing.
func (t Trade) EntryAnalog() decimal.Decimal {
	if t.Asset == Option {
		if t.Method == LevelBased {
			return t.UnderlyingPrice
		}
		return t.Premium
	}
	return t.EntryPrice
}

// ExitRef is the stop or level the chosen method sizes against.
func (t Trade) ExitRef() decimal.Decimal {
	if t.Method == LevelBased {
		return t.SupportResistanceLevel
	}
	return t.StopLossPrice
}

// NewEquity builds an equity trade with the common fields set. Method-specific
// parameters are filled in by the caller.
func NewEquity(symbol string, account, entry decimal.Decimal, method RiskMethod, dir Direction) Trade {
	return Trade{
		Asset:       Equity,
		Method:      method,
		Direction:   dir,
		AccountSize: account,
		Symbol:      symbol,
		EntryPrice:  entry,
	}
}

// NewOption builds an option trade. A zero multiplier means the default 100.
func NewOption(symbol string, account, premium decimal.Decimal, multiplier int64, method RiskMethod, dir Direction) Trade {
	return Trade{
		Asset:              Option,
		Method:             method,
		Direction:          dir,
		AccountSize:        account,
		Symbol:             symbol,
		Premium:            premium,
		ContractMultiplier: multiplier,
	}
}

// NewFuture builds a futures trade with its contract metadata.
func NewFuture(symbol string, account, entry, tickSize, tickValue, margin decimal.Decimal, method RiskMethod, dir Direction) Trade {
	return Trade{
		Asset:             Future,
		Method:            method,
		Direction:         dir,
		AccountSize:       account,
		Symbol:            symbol,
		EntryPrice:        entry,
		TickSize:          tickSize,
		TickValue:         tickValue,
		MarginRequirement: margin,
	}
}
