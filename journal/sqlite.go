package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// SQLiteStorage keeps the journal in a single SQLite database. Amounts are
// stored as TEXT so decimal values round-trip exactly. Each save rewrites
// the affected table inside one transaction, keeping the same
// whole-dataset-per-flush contract as the JSON backend.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	var existing int
	if err := db.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'pairs'`,
	).Scan(&existing); err != nil {
		db.Close()
		return nil, fmt.Errorf("inspect schema: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &SQLiteStorage{db: db}

	// Seed the defaults only when the pairs table was just created, so a
	// registry the user emptied on purpose stays empty across reloads.
	if existing == 0 {
		if err := s.SavePairs(NewRegistry(DefaultPairs)); err != nil {
			db.Close()
			return nil, fmt.Errorf("seed default pairs: %w", err)
		}
	}
	return s, nil
}

// LoadTrades reads the whole trades table. Rows that no longer parse are
// dropped; a query failure yields an empty store.
func (s *SQLiteStorage) LoadTrades() *Store {
	store := NewStore()

	rows, err := s.db.Query(`
		SELECT id, year, month, day, pair, session, timeframe, direction, amount, screenshot, comment
		FROM trades
		ORDER BY year, month, day, seq`)
	if err != nil {
		log.WithError(err).Warn("could not read trades table, starting empty")
		return store
	}
	defer rows.Close()

	dropped := 0
	for rows.Next() {
		var (
			d      Date
			rec    TradeRecord
			amount string
		)
		if err := rows.Scan(
			&rec.ID, &d.Year, &d.Month, &d.Day,
			&rec.Pair, &rec.Session, &rec.Timeframe, &rec.Direction,
			&amount, &rec.Screenshot, &rec.Comment,
		); err != nil {
			dropped++
			continue
		}
		amt, err := decimal.NewFromString(amount)
		if err != nil {
			dropped++
			continue
		}
		rec.Amount = amt
		store.Add(d, rec)
	}
	if err := rows.Err(); err != nil {
		log.WithError(err).Warn("trades table scan ended early")
	}

	dropped += store.Repair()
	if dropped > 0 {
		log.WithField("dropped", dropped).Warn("discarded malformed journal entries")
	}
	return store
}

// SaveTrades rewrites the trades table from the full store.
func (s *SQLiteStorage) SaveTrades(store *Store) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM trades`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO trades
		(id, year, month, day, seq, pair, session, timeframe, direction, amount, screenshot, comment)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for d, recs := range store.days {
		for i, r := range recs {
			if _, err := stmt.Exec(
				r.ID, d.Year, d.Month, d.Day, i,
				r.Pair, r.Session, r.Timeframe, r.Direction,
				r.Amount.String(), r.Screenshot, r.Comment,
			); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

// LoadPairs reads the pair table in stored order. Defaults only apply when
// the table cannot be read; an empty table is a deliberately emptied
// registry and loads as such.
func (s *SQLiteStorage) LoadPairs() *Registry {
	rows, err := s.db.Query(`SELECT name FROM pairs ORDER BY seq`)
	if err != nil {
		log.WithError(err).Warn("could not read pairs table, using defaults")
		return NewRegistry(DefaultPairs)
	}
	defer rows.Close()

	var pairs []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			continue
		}
		pairs = append(pairs, name)
	}
	if err := rows.Err(); err != nil {
		log.WithError(err).Warn("pairs table scan ended early")
	}
	return NewRegistry(pairs)
}

// SavePairs rewrites the pair table from the registry.
func (s *SQLiteStorage) SavePairs(g *Registry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM pairs`); err != nil {
		return err
	}
	for i, name := range g.Pairs() {
		if _, err := tx.Exec(`INSERT INTO pairs (seq, name) VALUES (?, ?)`, i, name); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
