package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) Append(r Record) error {
	_, err := j.db.Exec(`
		INSERT INTO calculations
		(id, time, asset, method, symbol, direction, position_size, risk_amount, estimated_risk, warnings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Time.UTC().Format(time.RFC3339), r.Asset, r.Method, r.Symbol,
		r.Direction, r.PositionSize, r.RiskAmount.String(), r.EstimatedRisk.String(), r.Warnings,
	)
	return err
}

// List returns the most recent records, newest first. ULIDs sort by creation
// time, so ordering by id is chronological.
func (j *SQLiteJournal) List(limit int) ([]Record, error) {
	rows, err := j.db.Query(`
		SELECT id, time, asset, method, symbol, direction, position_size, risk_amount, estimated_risk, warnings
		FROM calculations ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var ts, riskAmt, estRisk string
		if err := rows.Scan(&r.ID, &ts, &r.Asset, &r.Method, &r.Symbol,
			&r.Direction, &r.PositionSize, &riskAmt, &estRisk, &r.Warnings); err != nil {
			return nil, err
		}
		if r.Time, err = time.Parse(time.RFC3339, ts); err != nil {
			return nil, fmt.Errorf("parse record time: %w", err)
		}
		if r.RiskAmount, err = decimal.NewFromString(riskAmt); err != nil {
			return nil, fmt.Errorf("parse risk amount: %w", err)
		}
		if r.EstimatedRisk, err = decimal.NewFromString(estRisk); err != nil {
			return nil, fmt.Errorf("parse estimated risk: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
