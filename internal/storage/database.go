package storage

import (
	"math/rand/v2"
	"time"
)

type ExpiryStatus int

const (
	// ExpNotFound means that the key does not exist
	ExpNotFound ExpiryStatus = -2
	// ExpNoTimeout means that the key exists, but it does not have a TTL
	ExpNoTimeout ExpiryStatus = -1
	// ExpActive means that the key has an active lifetime
	ExpActive ExpiryStatus = 1
)

// Options configures a Database
type Options struct {
	Clock Clock      // time source for expiration (nil = wall clock)
	Rand  *rand.Rand // source for random selection (nil = time-seeded)
}

// DefaultOptions returns the wall clock and a time-seeded random source
func DefaultOptions() *Options {
	seed := uint64(time.Now().UnixNano())
	return &Options{
		Clock: realClock{},
		Rand:  rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

// Database is one selectable keyspace. It is the only place where expired or
// emptied keys are collected, always lazily, when a key is touched.
//
// A Database is not safe for concurrent use
type Database struct {
	keyspace *Keyspace
	clock    Clock
	rnd      *rand.Rand
}

// NewDatabase creates an empty Database with the specified options (optional)
func NewDatabase(opts *Options) *Database {
	defaults := DefaultOptions()
	if opts == nil {
		opts = defaults
	}

	db := &Database{clock: opts.Clock, rnd: opts.Rand}
	if db.clock == nil {
		db.clock = defaults.Clock
	}
	if db.rnd == nil {
		db.rnd = defaults.Rand
	}
	db.keyspace = NewKeyspace(db.rnd)

	return db
}

// Now returns the current time of the database clock
func (db *Database) Now() time.Time {
	return db.clock.Now()
}

// Rand returns the random source used for selection commands
func (db *Database) Rand() *rand.Rand {
	return db.rnd
}

// gcKey removes the entry if it is empty or expired. Returns true if it was removed
func (db *Database) gcKey(name string, entity Entity) bool {
	if entity.IsEmpty() || entity.IsExpired(db.clock.Now()) {
		db.keyspace.Remove(name)
		return true
	}
	return false
}

// Get returns the live entity stored under name
func (db *Database) Get(name string) (Entity, bool) {
	entity, ok := db.keyspace.Get(name)
	if !ok || db.gcKey(name, entity) {
		return nil, false
	}
	return entity, true
}

// lookup returns the live entity under name if it has the wanted type
func lookup[T Entity](db *Database, name string, want DataType) (T, bool, error) {
	var zero T

	entity, ok := db.Get(name)
	if !ok {
		return zero, false, nil
	}
	if entity.Type() != want {
		return zero, false, ErrWrongType
	}
	return entity.(T), true, nil
}

// ensure returns the live entity under name, creating and storing a new one when absent
func ensure[T Entity](db *Database, name string, want DataType, create func() T) (T, error) {
	v, ok, err := lookup[T](db, name, want)
	if err != nil || ok {
		return v, err
	}
	v = create()
	db.keyspace.Set(name, v)
	return v, nil
}

func (db *Database) GetString(name string) (*String, bool, error) {
	return lookup[*String](db, name, TypeString)
}

func (db *Database) GetList(name string) (*List, bool, error) {
	return lookup[*List](db, name, TypeList)
}

func (db *Database) GetSet(name string) (*Set, bool, error) {
	return lookup[*Set](db, name, TypeSet)
}

func (db *Database) GetSortedSet(name string) (*SortedSet, bool, error) {
	return lookup[*SortedSet](db, name, TypeZSet)
}

func (db *Database) GetHash(name string) (*Hash, bool, error) {
	return lookup[*Hash](db, name, TypeHash)
}

func (db *Database) EnsureString(name string) (*String, error) {
	return ensure(db, name, TypeString, func() *String { return NewString("") })
}

func (db *Database) EnsureList(name string) (*List, error) {
	return ensure(db, name, TypeList, NewList)
}

func (db *Database) EnsureSet(name string) (*Set, error) {
	return ensure(db, name, TypeSet, NewSet)
}

func (db *Database) EnsureSortedSet(name string) (*SortedSet, error) {
	return ensure(db, name, TypeZSet, NewSortedSet)
}

func (db *Database) EnsureHash(name string) (*Hash, error) {
	return ensure(db, name, TypeHash, NewHash)
}

// Put stores entity under name, replacing any existing key of any type
func (db *Database) Put(name string, entity Entity) {
	db.keyspace.Set(name, entity)
}

// CreateString stores a new String under name, replacing any existing key
func (db *Database) CreateString(name, value string) *String {
	s := NewString(value)
	db.keyspace.Set(name, s)
	return s
}

// CreateSet stores a new Set under name, replacing any existing key
func (db *Database) CreateSet(name string) *Set {
	s := NewSet()
	db.keyspace.Set(name, s)
	return s
}

// Delete removes each present name and returns how many were removed
func (db *Database) Delete(names ...string) int {
	deleted := 0
	for _, name := range names {
		if db.keyspace.Remove(name) {
			deleted++
		}
	}
	return deleted
}

// Exists reports whether name holds a live key
func (db *Database) Exists(name string) bool {
	_, ok := db.Get(name)
	return ok
}

// Type returns the type name of the key, or "none"
func (db *Database) Type(name string) string {
	entity, ok := db.Get(name)
	if !ok {
		return "none"
	}
	return entity.Type().String()
}

// ExpireAt sets the absolute expiration of a live key. Returns false if the key is absent
func (db *Database) ExpireAt(name string, at time.Time) bool {
	entity, ok := db.Get(name)
	if !ok {
		return false
	}
	entity.SetExpiration(at)
	return true
}

// Expiry returns the remaining lifetime and status as ExpiryStatus
func (db *Database) Expiry(name string) (time.Duration, ExpiryStatus) {
	entity, ok := db.Get(name)
	if !ok {
		return 0, ExpNotFound
	}

	at, has := entity.Expiration()
	if !has {
		return 0, ExpNoTimeout
	}
	return at.Sub(db.clock.Now()), ExpActive
}

// TTL returns the remaining lifetime in (fractional) seconds, -1 for a key
// without expiration and -2 for a missing key
func (db *Database) TTL(name string) float64 {
	d, status := db.Expiry(name)
	if status != ExpActive {
		return float64(status)
	}
	return d.Seconds()
}

// Persist clears the expiration of a live key. Returns false if there was none
func (db *Database) Persist(name string) bool {
	entity, ok := db.Get(name)
	return ok && entity.Persist()
}

// Move transfers the key, its expiration included, to target, replacing
// whatever target held under that name. Returns false if the key is absent here
func (db *Database) Move(name string, target *Database) (bool, error) {
	if db == target {
		return false, ErrInvalidOperation
	}

	entity, ok := db.Get(name)
	if !ok {
		return false, nil
	}

	db.keyspace.Remove(name)
	target.keyspace.Set(name, entity)

	return true, nil
}

// Rename re-inserts the entity under newName, overwriting it. No-op if name is absent
func (db *Database) Rename(name, newName string) bool {
	if _, ok := db.Get(name); !ok {
		return false
	}
	entity, _ := db.keyspace.Detach(name)
	db.keyspace.Set(newName, entity)
	return true
}

// Random returns a live key chosen at random, collecting garbage it runs into
func (db *Database) Random() (string, bool) {
	for db.keyspace.Count() > 0 {
		name, entity, ok := db.keyspace.RandomEntry()
		if !ok {
			break
		}
		if !db.gcKey(name, entity) {
			return name, true
		}
	}
	return "", false
}

// Keys returns the live keys matching the glob pattern
func (db *Database) Keys(pattern string) ([]string, error) {
	re, err := compileGlob(pattern)
	if err != nil {
		return nil, err
	}

	matches := []string{}
	for name, entity := range db.keyspace.All() {
		if re.MatchString(name) && !db.gcKey(name, entity) {
			matches = append(matches, name)
		}
	}
	return matches, nil
}

// Flush removes every key
func (db *Database) Flush() {
	db.keyspace.Reset()
}

// Count returns the number of raw entries, including stale ones not yet collected
func (db *Database) Count() int {
	return db.keyspace.Count()
}

// Expires returns the number of raw entries carrying an expiration
func (db *Database) Expires() int {
	n := 0
	for _, entity := range db.keyspace.All() {
		if _, ok := entity.Expiration(); ok {
			n++
		}
	}
	return n
}

// Clone returns an independent deep copy sharing the clock.
// The copy gets its own random source derived from this one
func (db *Database) Clone() *Database {
	c := NewDatabase(&Options{
		Clock: db.clock,
		Rand:  rand.New(rand.NewPCG(db.rnd.Uint64(), db.rnd.Uint64())),
	})
	for name, entity := range db.keyspace.All() {
		c.keyspace.Set(name, entity.clone())
	}
	return c
}
