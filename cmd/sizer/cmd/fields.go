package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/sizer/config"
	"github.com/rustyeddy/sizer/trade"
)

// fieldFlags is the shared flag surface for calc and check: one flag per form
// field, plus asset/method selection and an optional config file for defaults.
type fieldFlags struct {
	configPath string

	asset  string
	method string

	account    string
	symbol     string
	direction  string
	entry      string
	premium    string
	multiplier string
	underlying string
	tickSize   string
	tickValue  string
	margin     string
	riskPct    string
	fixed      string
	stop       string
	level      string
}

func (ff *fieldFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&ff.configPath, "config", "f", "", "path to config file (YAML or JSON)")

	c.Flags().StringVar(&ff.asset, "asset", "", "asset type: EQUITY, OPTION or FUTURE")
	c.Flags().StringVar(&ff.method, "method", "", "risk method: PERCENTAGE, FIXED_AMOUNT or LEVEL_BASED")

	c.Flags().StringVar(&ff.account, "account", "", "account size in dollars")
	c.Flags().StringVar(&ff.symbol, "symbol", "", "instrument symbol")
	c.Flags().StringVar(&ff.direction, "direction", "", "trade direction: LONG or SHORT")
	c.Flags().StringVar(&ff.entry, "entry", "", "entry price (equity/future)")
	c.Flags().StringVar(&ff.premium, "premium", "", "option premium")
	c.Flags().StringVar(&ff.multiplier, "multiplier", "", "option contract multiplier (default 100)")
	c.Flags().StringVar(&ff.underlying, "underlying", "", "underlying price (option level-based)")
	c.Flags().StringVar(&ff.tickSize, "tick-size", "", "future tick size")
	c.Flags().StringVar(&ff.tickValue, "tick-value", "", "future tick value in dollars")
	c.Flags().StringVar(&ff.margin, "margin", "", "future per-contract margin requirement")
	c.Flags().StringVar(&ff.riskPct, "risk-pct", "", "risk percentage (1-5)")
	c.Flags().StringVar(&ff.fixed, "fixed", "", "fixed risk amount in dollars (10-500)")
	c.Flags().StringVar(&ff.stop, "stop", "", "stop loss price")
	c.Flags().StringVar(&ff.level, "level", "", "support/resistance level")
}

// resolve merges flags with config defaults into the raw-value map the form
// engine consumes.
func (ff *fieldFlags) resolve() (trade.AssetType, trade.RiskMethod, map[trade.FieldName]string, *config.Config, error) {
	cfg := config.Default()
	if ff.configPath != "" {
		loaded, err := config.LoadFromFile(ff.configPath)
		if err != nil {
			return "", "", nil, nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	assetRaw := strings.ToUpper(ff.asset)
	if assetRaw == "" {
		assetRaw = cfg.Defaults.Asset
	}
	asset, ok := trade.ParseAsset(assetRaw)
	if !ok {
		return "", "", nil, nil, fmt.Errorf("unknown asset type: %s", assetRaw)
	}

	methodRaw := strings.ToUpper(ff.method)
	if methodRaw == "" {
		methodRaw = cfg.Defaults.Method
	}
	method, ok := trade.ParseMethod(methodRaw)
	if !ok {
		return "", "", nil, nil, fmt.Errorf("unknown risk method: %s", methodRaw)
	}

	account := ff.account
	if account == "" {
		account = cfg.Account.Size
	}
	riskPct := ff.riskPct
	if riskPct == "" && method == trade.Percentage {
		riskPct = cfg.Defaults.RiskPercent
	}

	values := map[trade.FieldName]string{}
	set := func(name trade.FieldName, v string) {
		if v != "" {
			values[name] = v
		}
	}
	set(trade.FieldAccountSize, account)
	set(trade.FieldSymbol, ff.symbol)
	set(trade.FieldTradeDirection, strings.ToUpper(ff.direction))
	set(trade.FieldEntryPrice, ff.entry)
	set(trade.FieldPremium, ff.premium)
	set(trade.FieldMultiplier, ff.multiplier)
	set(trade.FieldUnderlyingPrice, ff.underlying)
	set(trade.FieldTickSize, ff.tickSize)
	set(trade.FieldTickValue, ff.tickValue)
	set(trade.FieldMargin, ff.margin)
	set(trade.FieldRiskPercentage, riskPct)
	set(trade.FieldFixedRisk, ff.fixed)
	set(trade.FieldStopLoss, ff.stop)
	set(trade.FieldLevel, ff.level)

	return asset, method, values, cfg, nil
}
