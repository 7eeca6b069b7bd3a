package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/sizer/trade"
)

// BuildTrade converts raw form values into a Trade for the calculator.
// Intended to run only once the form is submittable; parse failures here mean
// the caller skipped validation and come back as plain errors.
func BuildTrade(values map[trade.FieldName]string, asset trade.AssetType, method trade.RiskMethod) (trade.Trade, error) {
	t := trade.Trade{
		Asset:  asset,
		Method: method,
		Symbol: strings.TrimSpace(values[trade.FieldSymbol]),
	}

	dir, ok := trade.ParseDirection(strings.ToUpper(strings.TrimSpace(values[trade.FieldTradeDirection])))
	if !ok {
		return trade.Trade{}, fmt.Errorf("parse %s: %q is not LONG or SHORT",
			trade.FieldTradeDirection, values[trade.FieldTradeDirection])
	}
	t.Direction = dir

	var err error
	if t.AccountSize, err = dec(values, trade.FieldAccountSize); err != nil {
		return trade.Trade{}, err
	}

	switch asset {
	case trade.Equity, trade.Future:
		if t.EntryPrice, err = dec(values, trade.FieldEntryPrice); err != nil {
			return trade.Trade{}, err
		}
	case trade.Option:
		if t.Premium, err = dec(values, trade.FieldPremium); err != nil {
			return trade.Trade{}, err
		}
		if raw := strings.TrimSpace(values[trade.FieldMultiplier]); raw != "" {
			n, perr := strconv.ParseInt(raw, 10, 64)
			if perr != nil {
				return trade.Trade{}, fmt.Errorf("parse %s: %w", trade.FieldMultiplier, perr)
			}
			t.ContractMultiplier = n
		}
		if method == trade.LevelBased {
			if t.UnderlyingPrice, err = dec(values, trade.FieldUnderlyingPrice); err != nil {
				return trade.Trade{}, err
			}
		}
	}

	if asset == trade.Future {
		if t.TickSize, err = dec(values, trade.FieldTickSize); err != nil {
			return trade.Trade{}, err
		}
		if t.TickValue, err = dec(values, trade.FieldTickValue); err != nil {
			return trade.Trade{}, err
		}
		if t.MarginRequirement, err = dec(values, trade.FieldMargin); err != nil {
			return trade.Trade{}, err
		}
	}

	switch method {
	case trade.Percentage:
		if t.RiskPercentage, err = dec(values, trade.FieldRiskPercentage); err != nil {
			return trade.Trade{}, err
		}
		if t.StopLossPrice, err = dec(values, trade.FieldStopLoss); err != nil {
			return trade.Trade{}, err
		}
	case trade.FixedAmount:
		if t.FixedRiskAmount, err = dec(values, trade.FieldFixedRisk); err != nil {
			return trade.Trade{}, err
		}
		if t.StopLossPrice, err = dec(values, trade.FieldStopLoss); err != nil {
			return trade.Trade{}, err
		}
	case trade.LevelBased:
		if t.SupportResistanceLevel, err = dec(values, trade.FieldLevel); err != nil {
			return trade.Trade{}, err
		}
	}

	return t, nil
}

func dec(values map[trade.FieldName]string, name trade.FieldName) (decimal.Decimal, error) {
	raw := strings.TrimSpace(values[name])
	if raw == "" {
		return decimal.Zero, fmt.Errorf("parse %s: value is empty", name)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %s: %w", name, err)
	}
	return d, nil
}
