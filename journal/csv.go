package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

var csvHeader = []string{
	"id", "time", "asset", "method", "symbol", "direction",
	"position_size", "risk_amount", "estimated_risk", "warnings",
}

// CSVJournal appends calculation records to one CSV file, writing the header
// when the file is new.
type CSVJournal struct {
	path string
	w    *csv.Writer
	f    *os.File
}

func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			f.Close()
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, err
		}
	}

	return &CSVJournal{path: path, w: w, f: f}, nil
}

func (j *CSVJournal) Append(r Record) error {
	err := j.w.Write([]string{
		r.ID,
		r.Time.UTC().Format(time.RFC3339),
		r.Asset,
		r.Method,
		r.Symbol,
		r.Direction,
		strconv.FormatInt(r.PositionSize, 10),
		r.RiskAmount.String(),
		r.EstimatedRisk.String(),
		r.Warnings,
	})
	if err != nil {
		return err
	}

	j.w.Flush()
	return j.w.Error()
}

// List reads the whole file and returns the last limit records, newest first.
func (j *CSVJournal) List(limit int) ([]Record, error) {
	f, err := os.Open(j.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rd := csv.NewReader(f)
	if _, err := rd.Read(); err != nil { // header
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	var all []Record
	for {
		row, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		r, err := recordFromRow(row)
		if err != nil {
			return nil, err
		}
		all = append(all, r)
	}

	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	// newest first
	for i, k := 0, len(all)-1; i < k; i, k = i+1, k-1 {
		all[i], all[k] = all[k], all[i]
	}
	return all, nil
}

func recordFromRow(row []string) (Record, error) {
	if len(row) != len(csvHeader) {
		return Record{}, fmt.Errorf("malformed journal row: %d columns", len(row))
	}

	r := Record{
		ID:        row[0],
		Asset:     row[2],
		Method:    row[3],
		Symbol:    row[4],
		Direction: row[5],
		Warnings:  row[9],
	}

	var err error
	if r.Time, err = time.Parse(time.RFC3339, row[1]); err != nil {
		return Record{}, fmt.Errorf("parse record time: %w", err)
	}
	if r.PositionSize, err = strconv.ParseInt(row[6], 10, 64); err != nil {
		return Record{}, fmt.Errorf("parse position size: %w", err)
	}
	if r.RiskAmount, err = decimal.NewFromString(row[7]); err != nil {
		return Record{}, fmt.Errorf("parse risk amount: %w", err)
	}
	if r.EstimatedRisk, err = decimal.NewFromString(row[8]); err != nil {
		return Record{}, fmt.Errorf("parse estimated risk: %w", err)
	}
	return r, nil
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		j.f.Close()
		return err
	}
	return j.f.Close()
}
