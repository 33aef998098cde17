package store

// Schema creates the persisted tables. Monetary columns are stored as TEXT so
// decimal values round-trip without float loss.
const Schema = `
CREATE TABLE IF NOT EXISTS simulations (
	date TEXT PRIMARY KEY,
	current_age INTEGER NOT NULL,
	retirement_age INTEGER NOT NULL,
	swr_pct TEXT NOT NULL,
	annual_expenses TEXT NOT NULL,
	invested TEXT NOT NULL,
	return_pct TEXT NOT NULL,
	inflation_pct TEXT NOT NULL,
	portfolio_value TEXT NOT NULL,
	monthly_contribution TEXT NOT NULL,
	fire_target TEXT NOT NULL,
	coast_fire_target TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS contributions (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	asset TEXT NOT NULL,
	quantity TEXT NOT NULL,
	amount_invested TEXT NOT NULL,
	return_pct TEXT NOT NULL,
	portfolio_value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_contributions_date ON contributions(date);
`
