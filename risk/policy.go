package risk

import "github.com/rustyeddy/sizer/trade"

// base fields every asset requires regardless of method.
var baseFields = map[trade.AssetType][]trade.FieldName{
	trade.Equity: {
		trade.FieldAccountSize,
		trade.FieldSymbol,
		trade.FieldEntryPrice,
		trade.FieldTradeDirection,
	},
	trade.Option: {
		trade.FieldAccountSize,
		trade.FieldSymbol,
		trade.FieldPremium,
		trade.FieldTradeDirection,
	},
	// Futures cannot be sized without tick metadata, and the margin check
	// needs the per-contract requirement, so those ride with the base set.
	trade.Future: {
		trade.FieldAccountSize,
		trade.FieldSymbol,
		trade.FieldEntryPrice,
		trade.FieldTickSize,
		trade.FieldTickValue,
		trade.FieldMargin,
		trade.FieldTradeDirection,
	},
}

// methodFields adds the method-specific parameters per (asset, method).
// LEVEL_BASED is supported for options: sizing runs off the underlying price
// against the level, so the underlying price becomes required there.
var methodFields = map[trade.AssetType]map[trade.RiskMethod][]trade.FieldName{
	trade.Equity: {
		trade.Percentage:  {trade.FieldRiskPercentage, trade.FieldStopLoss},
		trade.FixedAmount: {trade.FieldFixedRisk, trade.FieldStopLoss},
		trade.LevelBased:  {trade.FieldLevel},
	},
	trade.Option: {
		trade.Percentage:  {trade.FieldRiskPercentage, trade.FieldStopLoss},
		trade.FixedAmount: {trade.FieldFixedRisk, trade.FieldStopLoss},
		trade.LevelBased:  {trade.FieldLevel, trade.FieldUnderlyingPrice},
	},
	trade.Future: {
		trade.Percentage:  {trade.FieldRiskPercentage, trade.FieldStopLoss},
		trade.FixedAmount: {trade.FieldFixedRisk, trade.FieldStopLoss},
		trade.LevelBased:  {trade.FieldLevel},
	},
}

// IsSupported reports whether the (asset, method) combination can be sized.
// Unknown combinations are unsupported rather than an error.
func IsSupported(asset trade.AssetType, method trade.RiskMethod) bool {
	m, ok := methodFields[asset]
	if !ok {
		return false
	}
	_, ok = m[method]
	return ok
}

// RequiredFields returns the full required-field set for the combination.
// Unsupported combinations return an empty set.
func RequiredFields(asset trade.AssetType, method trade.RiskMethod) []trade.FieldName {
	if !IsSupported(asset, method) {
		return nil
	}
	fields := make([]trade.FieldName, 0, len(baseFields[asset])+3)
	fields = append(fields, baseFields[asset]...)
	fields = append(fields, methodFields[asset][method]...)
	return fields
}

// Requires reports whether name is in the required set for the combination.
func Requires(asset trade.AssetType, method trade.RiskMethod, name trade.FieldName) bool {
	for _, f := range RequiredFields(asset, method) {
		if f == name {
			return true
		}
	}
	return false
}
