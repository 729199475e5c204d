package journal

// Storage persists the ledger and the instrument registry. Loads are
// fail-soft: a missing or unreadable dataset yields an empty store or the
// default registry, never an error the caller must handle. Saves rewrite the
// whole dataset; a failed save leaves the previous durable state in place.
type Storage interface {
	LoadTrades() *Store
	SaveTrades(*Store) error
	LoadPairs() *Registry
	SavePairs(*Registry) error
	Close() error
}
