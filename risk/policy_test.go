package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/sizer/trade"
)

func TestIsSupported(t *testing.T) {
	t.Parallel()

	assets := []trade.AssetType{trade.Equity, trade.Option, trade.Future}
	methods := []trade.RiskMethod{trade.Percentage, trade.FixedAmount, trade.LevelBased}

	// Every asset supports every method, including level-based options.
	for _, a := range assets {
		for _, m := range methods {
			assert.True(t, IsSupported(a, m), "%s/%s", a, m)
		}
	}

	assert.False(t, IsSupported(trade.AssetType("CRYPTO"), trade.Percentage))
	assert.False(t, IsSupported(trade.Equity, trade.RiskMethod("KELLY")))
}

func TestRequiredFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		asset  trade.AssetType
		method trade.RiskMethod
		want   []trade.FieldName
	}{
		{
			name:   "equity percentage",
			asset:  trade.Equity,
			method: trade.Percentage,
			want: []trade.FieldName{
				trade.FieldAccountSize, trade.FieldSymbol, trade.FieldEntryPrice,
				trade.FieldTradeDirection, trade.FieldRiskPercentage, trade.FieldStopLoss,
			},
		},
		{
			name:   "option fixed amount",
			asset:  trade.Option,
			method: trade.FixedAmount,
			want: []trade.FieldName{
				trade.FieldAccountSize, trade.FieldSymbol, trade.FieldPremium,
				trade.FieldTradeDirection, trade.FieldFixedRisk, trade.FieldStopLoss,
			},
		},
		{
			name:   "option level based needs the underlying",
			asset:  trade.Option,
			method: trade.LevelBased,
			want: []trade.FieldName{
				trade.FieldAccountSize, trade.FieldSymbol, trade.FieldPremium,
				trade.FieldTradeDirection, trade.FieldLevel, trade.FieldUnderlyingPrice,
			},
		},
		{
			name:   "future level based carries contract metadata",
			asset:  trade.Future,
			method: trade.LevelBased,
			want: []trade.FieldName{
				trade.FieldAccountSize, trade.FieldSymbol, trade.FieldEntryPrice,
				trade.FieldTickSize, trade.FieldTickValue, trade.FieldMargin,
				trade.FieldTradeDirection, trade.FieldLevel,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ElementsMatch(t, tt.want, RequiredFields(tt.asset, tt.method))
		})
	}
}

func TestRequiredFields_UnsupportedIsEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RequiredFields(trade.AssetType("CRYPTO"), trade.Percentage))
}

func TestRequires(t *testing.T) {
	t.Parallel()

	assert.True(t, Requires(trade.Equity, trade.Percentage, trade.FieldStopLoss))
	assert.False(t, Requires(trade.Equity, trade.LevelBased, trade.FieldStopLoss))
	assert.True(t, Requires(trade.Equity, trade.LevelBased, trade.FieldLevel))
}
