package engine

import (
	"time"

	"github.com/eternalApril/nisekv/internal/storage"
)

// Del removes the keys and returns how many were present
func (e *Engine) Del(keys ...string) int {
	return e.db().Delete(keys...)
}

// Exists returns how many of the keys are live. A key given twice is counted twice
func (e *Engine) Exists(keys ...string) int {
	db := e.db()
	n := 0
	for _, k := range keys {
		if db.Exists(k) {
			n++
		}
	}
	return n
}

// Expire sets a relative lifetime. A non-positive ttl makes the key expire on its next access
func (e *Engine) Expire(key string, ttl time.Duration) bool {
	db := e.db()
	return db.ExpireAt(key, db.Now().Add(ttl))
}

// ExpireAt sets an absolute expiration
func (e *Engine) ExpireAt(key string, at time.Time) bool {
	return e.db().ExpireAt(key, at)
}

// TTL returns the remaining lifetime in fractional seconds, or -1 / -2
func (e *Engine) TTL(key string) float64 {
	return e.db().TTL(key)
}

// Expiry returns the remaining lifetime with its status
func (e *Engine) Expiry(key string) (time.Duration, storage.ExpiryStatus) {
	return e.db().Expiry(key)
}

func (e *Engine) Persist(key string) bool {
	return e.db().Persist(key)
}

// Move transfers key to the database at index. Returns false without
// touching either database when the target already holds key
func (e *Engine) Move(key string, index int) (bool, error) {
	target, err := e.dbs.Database(index)
	if err != nil {
		return false, err
	}
	db := e.db()
	if db != target && target.Exists(key) {
		return false, nil
	}
	return db.Move(key, target)
}

// Rename moves the value of key to newKey, overwriting it
func (e *Engine) Rename(key, newKey string) error {
	if !e.db().Rename(key, newKey) {
		return storage.ErrNoSuchKey
	}
	return nil
}

// RenameNX renames key only if newKey does not exist
func (e *Engine) RenameNX(key, newKey string) (bool, error) {
	db := e.db()
	if !db.Exists(key) {
		return false, storage.ErrNoSuchKey
	}
	if db.Exists(newKey) {
		return false, nil
	}
	db.Rename(key, newKey)
	return true, nil
}

func (e *Engine) RandomKey() (string, bool) {
	return e.db().Random()
}

// Keys returns the live keys matching the glob pattern
func (e *Engine) Keys(pattern string) ([]string, error) {
	return e.db().Keys(pattern)
}

// Type returns the type name of key, or "none"
func (e *Engine) Type(key string) string {
	return e.db().Type(key)
}
