package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/sizer/trade"
)

func equityPctCtx(siblings map[trade.FieldName]string) Context {
	return Context{Asset: trade.Equity, Method: trade.Percentage, Siblings: siblings}
}

func TestValidateField_EmptyIsIncompleteNotInvalid(t *testing.T) {
	t.Parallel()

	fs := ValidateField(trade.FieldEntryPrice, "", equityPctCtx(nil))
	assert.True(t, fs.Valid)
	assert.False(t, fs.Filled)
	assert.True(t, fs.Required)
	assert.Empty(t, fs.Message)

	fs = ValidateField(trade.FieldEntryPrice, "   ", equityPctCtx(nil))
	assert.True(t, fs.Valid)
	assert.False(t, fs.Filled)
}

func TestValidateField_Numeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"positive decimal", "150.25", true},
		{"not a number", "abc", false},
		{"negative", "-3", false},
		{"zero", "0", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fs := ValidateField(trade.FieldEntryPrice, tt.raw, equityPctCtx(nil))
			assert.Equal(t, tt.valid, fs.Valid)
			assert.True(t, fs.Filled)
		})
	}
}

func TestValidateField_RiskPercentageRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw   string
		valid bool
	}{
		{"1.0", true},
		{"5.0", true},
		{"0.99", false},
		{"5.01", false},
		{"2.5", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			fs := ValidateField(trade.FieldRiskPercentage, tt.raw, equityPctCtx(nil))
			assert.Equal(t, tt.valid, fs.Valid)
		})
	}
}

func TestValidateField_FixedRiskRangeAndCap(t *testing.T) {
	t.Parallel()

	ctx := Context{
		Asset:  trade.Equity,
		Method: trade.FixedAmount,
		Siblings: map[trade.FieldName]string{
			trade.FieldAccountSize: "5000", // 5% cap = $250
		},
	}

	assert.True(t, ValidateField(trade.FieldFixedRisk, "250", ctx).Valid)
	assert.False(t, ValidateField(trade.FieldFixedRisk, "9", ctx).Valid)
	assert.False(t, ValidateField(trade.FieldFixedRisk, "501", ctx).Valid)

	fs := ValidateField(trade.FieldFixedRisk, "300", ctx)
	assert.False(t, fs.Valid)
	assert.Contains(t, fs.Message, "5%")

	// Without a usable account size the cap check is skipped.
	fs = ValidateField(trade.FieldFixedRisk, "300", equityPctCtx(nil))
	assert.True(t, fs.Valid)
}

func TestValidateField_StopDirectional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		dir   string
		stop  string
		valid bool
	}{
		{"long stop below entry", "LONG", "147", true},
		{"long stop above entry", "LONG", "152", false},
		{"long stop at entry", "LONG", "150", false},
		{"short stop above entry", "SHORT", "152", true},
		{"short stop below entry", "SHORT", "147", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := equityPctCtx(map[trade.FieldName]string{
				trade.FieldEntryPrice:     "150",
				trade.FieldTradeDirection: tt.dir,
			})
			fs := ValidateField(trade.FieldStopLoss, tt.stop, ctx)
			assert.Equal(t, tt.valid, fs.Valid)
			if !tt.valid {
				// Cross-field message names both fields.
				assert.Contains(t, fs.Message, string(trade.FieldStopLoss))
				assert.Contains(t, fs.Message, string(trade.FieldEntryPrice))
			}
		})
	}
}

func TestValidateField_OptionStopComparesPremium(t *testing.T) {
	t.Parallel()

	ctx := Context{
		Asset:  trade.Option,
		Method: trade.FixedAmount,
		Siblings: map[trade.FieldName]string{
			trade.FieldPremium:        "0.56",
			trade.FieldTradeDirection: "SHORT",
		},
	}

	assert.True(t, ValidateField(trade.FieldStopLoss, "0.65", ctx).Valid)
	fs := ValidateField(trade.FieldStopLoss, "0.50", ctx)
	assert.False(t, fs.Valid)
	assert.Contains(t, fs.Message, string(trade.FieldPremium))
}

func TestValidateField_OptionLevelComparesUnderlying(t *testing.T) {
	t.Parallel()

	ctx := Context{
		Asset:  trade.Option,
		Method: trade.LevelBased,
		Siblings: map[trade.FieldName]string{
			trade.FieldUnderlyingPrice: "450",
			trade.FieldTradeDirection:  "LONG",
		},
	}

	assert.True(t, ValidateField(trade.FieldLevel, "445", ctx).Valid)
	assert.False(t, ValidateField(trade.FieldLevel, "455", ctx).Valid)
}

func TestValidateField_DirectionalSkippedWithoutReference(t *testing.T) {
	t.Parallel()

	// Entry not yet filled: only the range rule applies.
	ctx := equityPctCtx(map[trade.FieldName]string{
		trade.FieldTradeDirection: "LONG",
	})
	assert.True(t, ValidateField(trade.FieldStopLoss, "152", ctx).Valid)
}

func TestValidateField_Symbol(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidateField(trade.FieldSymbol, "AAPL", equityPctCtx(nil)).Valid)
	long := strings.Repeat("X", MaxSymbolLen+1)
	assert.False(t, ValidateField(trade.FieldSymbol, long, equityPctCtx(nil)).Valid)
}

func TestValidateField_Direction(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidateField(trade.FieldTradeDirection, "LONG", equityPctCtx(nil)).Valid)
	assert.True(t, ValidateField(trade.FieldTradeDirection, "short", equityPctCtx(nil)).Valid)
	assert.False(t, ValidateField(trade.FieldTradeDirection, "SIDEWAYS", equityPctCtx(nil)).Valid)
}

func TestValidateField_Multiplier(t *testing.T) {
	t.Parallel()

	ctx := Context{Asset: trade.Option, Method: trade.FixedAmount, Siblings: nil}
	assert.True(t, ValidateField(trade.FieldMultiplier, "100", ctx).Valid)
	assert.False(t, ValidateField(trade.FieldMultiplier, "0", ctx).Valid)
	assert.False(t, ValidateField(trade.FieldMultiplier, "10.5", ctx).Valid)
}
