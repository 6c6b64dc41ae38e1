package engine

import (
	"github.com/eternalApril/nisekv/internal/storage"
)

// Append adds value to the end of the string at key and returns the new length
func (e *Engine) Append(key, value string) (int, error) {
	var n int
	db := e.db()
	err := update(db, key, db.GetString, newEmptyString, func(s *storage.String) error {
		n = s.Append(value)
		return nil
	})
	return n, err
}

// BitCount counts the set bits in the byte range [start, end]
func (e *Engine) BitCount(key string, start, end int) (int, error) {
	s, ok, err := e.db().GetString(key)
	if err != nil || !ok {
		return 0, err
	}
	return s.BitCount(start, end), nil
}

// IncrBy adds delta to the integer at key. A missing key starts from 0
func (e *Engine) IncrBy(key string, delta int64) (int64, error) {
	var n int64
	db := e.db()
	err := update(db, key, db.GetString, newEmptyString, func(s *storage.String) error {
		var err error
		n, err = s.IncrBy(delta)
		return err
	})
	return n, err
}

// IncrByFloat adds delta to the number at key and returns its new representation
func (e *Engine) IncrByFloat(key string, delta float64) (string, error) {
	var v string
	db := e.db()
	err := update(db, key, db.GetString, newEmptyString, func(s *storage.String) error {
		var err error
		v, err = s.IncrByFloat(delta)
		return err
	})
	return v, err
}

func (e *Engine) Get(key string) (string, bool, error) {
	s, ok, err := e.db().GetString(key)
	if err != nil || !ok {
		return "", false, err
	}
	return s.Value(), true, nil
}

func (e *Engine) GetBit(key string, offset int64) (int, error) {
	s, ok, err := e.db().GetString(key)
	if err != nil || !ok {
		return 0, err
	}
	return s.GetBit(offset), nil
}

func (e *Engine) GetRange(key string, start, end int) (string, error) {
	s, ok, err := e.db().GetString(key)
	if err != nil || !ok {
		return "", err
	}
	return s.GetRange(start, end), nil
}

// GetSet stores value and returns the previous one. The expiration is dropped
func (e *Engine) GetSet(key, value string) (string, bool, error) {
	old, ok, err := e.Get(key)
	if err != nil {
		return "", false, err
	}
	e.db().CreateString(key, value)
	return old, ok, nil
}

// MGet returns the value of every key. Missing keys and keys of another type are nil
func (e *Engine) MGet(keys ...string) []OptionalString {
	out := make([]OptionalString, len(keys))
	for i, k := range keys {
		v, ok, err := e.Get(k)
		if err == nil && ok {
			out[i] = OptionalString{Value: v, Valid: true}
		}
	}
	return out
}

// MSet stores every pair in order, later pairs win
func (e *Engine) MSet(pairs ...KeyValue) {
	db := e.db()
	for _, p := range pairs {
		db.CreateString(p.Key, p.Value)
	}
}

// MSetNX stores the pairs only if none of the keys exist
func (e *Engine) MSetNX(pairs ...KeyValue) bool {
	db := e.db()
	for _, p := range pairs {
		if db.Exists(p.Key) {
			return false
		}
	}
	e.MSet(pairs...)
	return true
}

// Set writes the value based on the options. Returns true if the write happened
func (e *Engine) Set(key, value string, opts SetOptions) bool {
	db := e.db()

	current, exists := db.Get(key)
	if opts.NX && exists {
		return false
	}
	if opts.XX && !exists {
		return false
	}

	s := db.CreateString(key, value)

	switch {
	case opts.KeepTTL:
		// a fresh key has nothing to keep
		if exists {
			if at, ok := current.Expiration(); ok {
				s.SetExpiration(at)
			}
		}
	case opts.TTL > 0:
		s.SetExpiration(db.Now().Add(opts.TTL))
	case !opts.ExpireAt.IsZero():
		s.SetExpiration(opts.ExpireAt)
	}

	return true
}

// SetBit sets or clears one bit and returns its previous value
func (e *Engine) SetBit(key string, offset int64, bit int) (int, error) {
	var old int
	db := e.db()
	err := update(db, key, db.GetString, newEmptyString, func(s *storage.String) error {
		var err error
		old, err = s.SetBit(offset, bit)
		return err
	})
	return old, err
}

// SetNX stores value only if key does not exist
func (e *Engine) SetNX(key, value string) bool {
	return e.Set(key, value, SetOptions{NX: true})
}

// SetRange overwrites part of the string at key and returns its new length
func (e *Engine) SetRange(key string, offset int, value string) (int, error) {
	var n int
	db := e.db()
	err := update(db, key, db.GetString, newEmptyString, func(s *storage.String) error {
		var err error
		n, err = s.SetRange(offset, value)
		return err
	})
	return n, err
}

func (e *Engine) StrLen(key string) (int, error) {
	s, ok, err := e.db().GetString(key)
	if err != nil || !ok {
		return 0, err
	}
	return s.Len(), nil
}
