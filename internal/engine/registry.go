package engine

import (
	"math/rand/v2"
	"time"

	"github.com/eternalApril/nisekv/internal/storage"
)

// DefaultDatabases is the number of databases when Options.Databases is not set
const DefaultDatabases = 16

// Options configures a Registry
type Options struct {
	Databases int           // number of databases (0 = DefaultDatabases)
	Seed      uint64        // seed for the random sources (0 = time-seeded)
	Clock     storage.Clock // shared time source (nil = wall clock)
}

// Registry holds a fixed set of databases and the currently selected index.
// Selecting a database swaps a reference, no data is copied
type Registry struct {
	dbs      []*storage.Database
	selected int
}

// NewRegistry creates opts.Databases empty databases with database 0 selected
func NewRegistry(opts *Options) *Registry {
	if opts == nil {
		opts = &Options{}
	}

	n := opts.Databases
	if n <= 0 {
		n = DefaultDatabases
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	r := &Registry{dbs: make([]*storage.Database, n)}
	for i := range r.dbs {
		r.dbs[i] = storage.NewDatabase(&storage.Options{
			Clock: opts.Clock,
			Rand:  rand.New(rand.NewPCG(seed, uint64(i))),
		})
	}

	return r
}

// Len returns the number of databases
func (r *Registry) Len() int {
	return len(r.dbs)
}

// Index returns the selected database index
func (r *Registry) Index() int {
	return r.selected
}

// Current returns the selected database
func (r *Registry) Current() *storage.Database {
	return r.dbs[r.selected]
}

// Database returns the database at index or storage.ErrOutOfRange
func (r *Registry) Database(index int) (*storage.Database, error) {
	if index < 0 || index >= len(r.dbs) {
		return nil, storage.ErrOutOfRange
	}
	return r.dbs[index], nil
}

// Select makes the database at index the current one
func (r *Registry) Select(index int) error {
	if index < 0 || index >= len(r.dbs) {
		return storage.ErrOutOfRange
	}
	r.selected = index
	return nil
}

// FlushAll empties every database
func (r *Registry) FlushAll() {
	for _, db := range r.dbs {
		db.Flush()
	}
}
