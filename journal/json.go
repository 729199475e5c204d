package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// File names used inside the data directory.
const (
	tradesFile = "trades.json"
	pairsFile  = "pairs.json"
)

// JSONStorage keeps the journal in two human-readable JSON files inside one
// data directory: trades keyed by YYYY-MM-DD, and the pair list. Writes go
// through a temp file and a rename so a crash mid-save never clobbers the
// previous file.
type JSONStorage struct {
	dir string
}

func NewJSONStorage(dir string) (*JSONStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &JSONStorage{dir: dir}, nil
}

// LoadTrades reads the trade file. Unparseable days and records are dropped
// rather than failing the whole load; a missing or unreadable file yields an
// empty store.
func (j *JSONStorage) LoadTrades() *Store {
	store := NewStore()
	path := filepath.Join(j.dir, tradesFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.WithError(err).WithField("path", path).Warn("could not read trades file, starting empty")
		}
		return store
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		log.WithError(err).WithField("path", path).Warn("trades file is corrupt, starting empty")
		return store
	}

	dropped := 0
	var badDays []string
	for key, val := range raw {
		d, err := parseDateKey(key)
		if err != nil {
			badDays = append(badDays, key)
			continue
		}
		var items []json.RawMessage
		if err := json.Unmarshal(val, &items); err != nil {
			badDays = append(badDays, key)
			continue
		}
		for _, item := range items {
			rec, ok := decodeRecord(item)
			if !ok {
				dropped++
				continue
			}
			store.Add(d, rec)
		}
	}

	dropped += store.Repair()
	if len(badDays) > 0 {
		sort.Strings(badDays)
		log.WithFields(log.Fields{"path": path, "keys": badDays}).
			Warn("discarded days with unusable keys or shapes")
	}
	if dropped > 0 {
		log.WithFields(log.Fields{"path": path, "dropped": dropped}).
			Warn("discarded malformed journal entries")
	}
	return store
}

// decodeRecord parses one stored trade. Records missing the pair or amount
// fields are rejected, matching the repair rules for hand-edited files.
func decodeRecord(item json.RawMessage) (TradeRecord, bool) {
	var probe struct {
		Pair   *string          `json:"pair"`
		Amount *decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(item, &probe); err != nil || probe.Pair == nil || probe.Amount == nil {
		return TradeRecord{}, false
	}
	var rec TradeRecord
	if err := json.Unmarshal(item, &rec); err != nil {
		return TradeRecord{}, false
	}
	return rec, true
}

// SaveTrades rewrites the trade file from the full store.
func (j *JSONStorage) SaveTrades(s *Store) error {
	out := make(map[string][]TradeRecord, s.Days())
	for d, recs := range s.days {
		out[d.String()] = recs
	}
	return j.write(tradesFile, out)
}

// LoadPairs reads the pair list, falling back to the default instruments
// when the file is absent or unreadable.
func (j *JSONStorage) LoadPairs() *Registry {
	path := filepath.Join(j.dir, pairsFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.WithError(err).WithField("path", path).Warn("could not read pairs file, using defaults")
		}
		return NewRegistry(DefaultPairs)
	}

	var pairs []string
	if err := json.Unmarshal(data, &pairs); err != nil {
		log.WithError(err).WithField("path", path).Warn("pairs file is corrupt, using defaults")
		return NewRegistry(DefaultPairs)
	}
	return NewRegistry(pairs)
}

// SavePairs rewrites the pair list file.
func (j *JSONStorage) SavePairs(g *Registry) error {
	return j.write(pairsFile, g.Pairs())
}

func (j *JSONStorage) Close() error {
	return nil
}

func (j *JSONStorage) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	path := filepath.Join(j.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
