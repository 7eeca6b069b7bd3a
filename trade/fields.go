package trade

// FieldName identifies one form field across the validation and policy layers.
// The string values double as the wire names the CLI and any UI binding use.
type FieldName string

const (
	FieldAccountSize     FieldName = "account_size"
	FieldSymbol          FieldName = "symbol"
	FieldTradeDirection  FieldName = "trade_direction"
	FieldEntryPrice      FieldName = "entry_price"
	FieldPremium         FieldName = "premium"
	FieldMultiplier      FieldName = "contract_multiplier"
	FieldUnderlyingPrice FieldName = "underlying_price"
	FieldTickSize        FieldName = "tick_size"
	FieldTickValue       FieldName = "tick_value"
	FieldMargin          FieldName = "margin_requirement"
	FieldRiskPercentage  FieldName = "risk_percentage"
	FieldFixedRisk       FieldName = "fixed_risk_amount"
	FieldStopLoss        FieldName = "stop_loss_price"
	FieldLevel           FieldName = "support_resistance_level"
)

// ParseAsset maps a wire string to an AssetType.
func ParseAsset(s string) (AssetType, bool) {
	switch AssetType(s) {
	case Equity, Option, Future:
		return AssetType(s), true
	}
	return "", false
}

// ParseMethod maps a wire string to a RiskMethod.
func ParseMethod(s string) (RiskMethod, bool) {
	switch RiskMethod(s) {
	case Percentage, FixedAmount, LevelBased:
		return RiskMethod(s), true
	}
	return "", false
}

// ParseDirection maps a wire string to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case Long, Short:
		return Direction(s), true
	}
	return "", false
}
