package storage

import (
	"iter"
	"math/rand/v2"
)

// Keyspace maps key names to entities. It never inspects expiration or emptiness:
// that filtering belongs to Database
type Keyspace struct {
	entries *dict[Entity]
	rnd     *rand.Rand
}

// NewKeyspace creates an empty Keyspace drawing random entries from rnd
func NewKeyspace(rnd *rand.Rand) *Keyspace {
	return &Keyspace{
		entries: newDict[Entity](),
		rnd:     rnd,
	}
}

// Set stores entity under name, replacing whatever was there
func (k *Keyspace) Set(name string, entity Entity) {
	k.entries.Put(name, entity)
}

// Get returns the raw entry for name
func (k *Keyspace) Get(name string) (Entity, bool) {
	return k.entries.Get(name)
}

// Remove deletes name. Returns true if it was present
func (k *Keyspace) Remove(name string) bool {
	_, ok := k.entries.Delete(name)
	return ok
}

// Detach removes name and hands its entity to the caller
func (k *Keyspace) Detach(name string) (Entity, bool) {
	return k.entries.Delete(name)
}

func (k *Keyspace) Exists(name string) bool {
	return k.entries.Has(name)
}

// Count returns the number of raw entries, stale ones included
func (k *Keyspace) Count() int {
	return k.entries.Len()
}

// RandomEntry picks uniformly among the raw entries
func (k *Keyspace) RandomEntry() (string, Entity, bool) {
	return k.entries.Random(k.rnd)
}

func (k *Keyspace) Reset() {
	k.entries.Reset()
}

// All yields every entry present when iteration starts and still present when reached.
// Entries may be removed while iterating
func (k *Keyspace) All() iter.Seq2[string, Entity] {
	return func(yield func(string, Entity) bool) {
		for _, name := range k.entries.Keys() {
			entity, ok := k.entries.Get(name)
			if !ok {
				continue
			}
			if !yield(name, entity) {
				return
			}
		}
	}
}
