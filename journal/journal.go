// Package journal records completed sizing calculations so past runs can be
// reviewed with the history command. CSV and SQLite backends share the
// Journal interface.
package journal

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one completed calculation.
type Record struct {
	ID            string
	Time          time.Time
	Asset         string
	Method        string
	Symbol        string
	Direction     string
	PositionSize  int64
	RiskAmount    decimal.Decimal
	EstimatedRisk decimal.Decimal
	Warnings      string
}

// Journal persists calculation records.
type Journal interface {
	Append(Record) error
	List(limit int) ([]Record, error)
	Close() error
}
