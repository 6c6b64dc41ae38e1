package engine

import (
	"time"

	"github.com/eternalApril/nisekv/internal/storage"
)

// Databases is what the engine needs from the instance registry
type Databases interface {
	// Current returns the database commands run against
	Current() *storage.Database

	// Database returns the database at index, or storage.ErrOutOfRange
	Database(index int) (*storage.Database, error)

	// Len returns the number of databases
	Len() int
}

// Engine implements one routine per command on top of the selected database.
// Reads of a missing key are no-ops returning the empty value of the reply type,
// writes to a missing key create an empty container first.
//
// Engine is not safe for concurrent use: callers serialize access
type Engine struct {
	dbs Databases
}

// New returns an Engine running against dbs
func New(dbs Databases) *Engine {
	return &Engine{dbs: dbs}
}

// Databases returns the registry the engine runs against
func (e *Engine) Databases() Databases {
	return e.dbs
}

func (e *Engine) db() *storage.Database {
	return e.dbs.Current()
}

// SetOptions modifies the behavior of Set
type SetOptions struct {
	TTL      time.Duration // relative lifetime (0 = none)
	ExpireAt time.Time     // absolute expiration (zero = none), ignored when TTL is set
	KeepTTL  bool          // retain the expiration of the replaced value
	NX       bool          // only set if the key does not exist
	XX       bool          // only set if the key already exists
}

// OptionalString is a reply element that may be nil
type OptionalString struct {
	Value string
	Valid bool
}

// KeyValue is one pair of a multi-key write
type KeyValue struct {
	Key   string
	Value string
}

// update runs fn against the entity at key, creating it with create when the key is absent.
// A created entity is stored only if fn succeeds and leaves it non-empty
func update[T storage.Entity](
	db *storage.Database,
	key string,
	get func(string) (T, bool, error),
	create func() T,
	fn func(T) error,
) error {
	v, ok, err := get(key)
	if err != nil {
		return err
	}
	if !ok {
		v = create()
	}

	if err = fn(v); err != nil {
		return err
	}

	if !ok && !v.IsEmpty() {
		db.Put(key, v)
	}
	return nil
}

func newEmptyString() *storage.String {
	return storage.NewString("")
}
