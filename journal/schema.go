package journal

const schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT NOT NULL,
	year INTEGER NOT NULL,
	month INTEGER NOT NULL,
	day INTEGER NOT NULL,
	seq INTEGER NOT NULL,
	pair TEXT NOT NULL,
	session TEXT NOT NULL,
	timeframe TEXT NOT NULL,
	direction TEXT NOT NULL,
	amount TEXT NOT NULL,
	screenshot TEXT NOT NULL,
	comment TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(year, month, day, seq);

CREATE TABLE IF NOT EXISTS pairs (
	seq INTEGER NOT NULL,
	name TEXT NOT NULL
);
`
