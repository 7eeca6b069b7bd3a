package journal

// Monetary columns are TEXT: decimals round-trip exactly, REAL would not.
const Schema = `
CREATE TABLE IF NOT EXISTS calculations (
	id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	asset TEXT NOT NULL,
	method TEXT NOT NULL,
	symbol TEXT NOT NULL,
	direction TEXT NOT NULL,
	position_size INTEGER NOT NULL,
	risk_amount TEXT NOT NULL,
	estimated_risk TEXT NOT NULL,
	warnings TEXT NOT NULL
);
`
