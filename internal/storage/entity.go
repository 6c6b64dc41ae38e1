package storage

import "time"

type DataType byte

const (
	TypeString DataType = iota + 1
	TypeList
	TypeSet
	TypeHash
	TypeZSet
)

// String returns the name reported by the TYPE command
func (t DataType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeList:
		return "list"
	case TypeSet:
		return "set"
	case TypeHash:
		return "hash"
	case TypeZSet:
		return "zset"
	}
	return "none"
}

// Entity is a value stored under a key. The concrete type is one of
// *String, *List, *Set, *SortedSet or *Hash and always matches Type()
type Entity interface {
	// Type is fixed at construction
	Type() DataType

	// IsEmpty reports whether the native container holds nothing. Empty entities are logically absent
	IsEmpty() bool

	// Expiration returns the absolute expiration time, if any
	Expiration() (time.Time, bool)

	// SetExpiration sets the absolute expiration time
	SetExpiration(at time.Time)

	// Persist clears the expiration. Returns false if none was set
	Persist() bool

	// IsExpired reports whether the expiration time has been reached at now
	IsExpired(now time.Time) bool

	clone() Entity
}

// expiry is embedded by every entity and survives in-place mutation
type expiry struct {
	expireAt time.Time // zero means no TTL
}

func (e *expiry) Expiration() (time.Time, bool) {
	return e.expireAt, !e.expireAt.IsZero()
}

func (e *expiry) SetExpiration(at time.Time) {
	e.expireAt = at
}

func (e *expiry) Persist() bool {
	if e.expireAt.IsZero() {
		return false
	}
	e.expireAt = time.Time{}
	return true
}

func (e *expiry) IsExpired(now time.Time) bool {
	return !e.expireAt.IsZero() && !now.Before(e.expireAt)
}
