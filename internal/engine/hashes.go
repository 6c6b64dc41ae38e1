package engine

import (
	"github.com/eternalApril/nisekv/internal/storage"
)

// HDel removes fields and returns how many were present
func (e *Engine) HDel(key string, fields ...string) (int, error) {
	h, ok, err := e.db().GetHash(key)
	if err != nil || !ok {
		return 0, err
	}
	return h.Del(fields...), nil
}

func (e *Engine) HExists(key, field string) (bool, error) {
	h, ok, err := e.db().GetHash(key)
	if err != nil || !ok {
		return false, err
	}
	return h.Exists(field), nil
}

func (e *Engine) HGet(key, field string) (string, bool, error) {
	h, ok, err := e.db().GetHash(key)
	if err != nil || !ok {
		return "", false, err
	}
	v, ok := h.Get(field)
	return v, ok, nil
}

func (e *Engine) HGetAll(key string) ([]storage.FieldValue, error) {
	h, ok, err := e.db().GetHash(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []storage.FieldValue{}, nil
	}
	return h.GetAll(), nil
}

// HIncrBy adds delta to the integer in field. A missing field starts from 0
func (e *Engine) HIncrBy(key, field string, delta int64) (int64, error) {
	var n int64
	db := e.db()
	err := update(db, key, db.GetHash, storage.NewHash, func(h *storage.Hash) error {
		var err error
		n, err = h.IncrBy(field, delta)
		return err
	})
	return n, err
}

// HIncrByFloat adds delta to the number in field and returns its new representation
func (e *Engine) HIncrByFloat(key, field string, delta float64) (string, error) {
	var v string
	db := e.db()
	err := update(db, key, db.GetHash, storage.NewHash, func(h *storage.Hash) error {
		var err error
		v, err = h.IncrByFloat(field, delta)
		return err
	})
	return v, err
}

func (e *Engine) HKeys(key string) ([]string, error) {
	h, ok, err := e.db().GetHash(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}
	return h.Keys(), nil
}

func (e *Engine) HVals(key string) ([]string, error) {
	h, ok, err := e.db().GetHash(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}
	return h.Values(), nil
}

func (e *Engine) HLen(key string) (int, error) {
	h, ok, err := e.db().GetHash(key)
	if err != nil || !ok {
		return 0, err
	}
	return h.Len(), nil
}

// HMGet returns the value of every field, nil for missing ones
func (e *Engine) HMGet(key string, fields ...string) ([]OptionalString, error) {
	h, ok, err := e.db().GetHash(key)
	if err != nil {
		return nil, err
	}

	out := make([]OptionalString, len(fields))
	if !ok {
		return out, nil
	}
	for i, f := range fields {
		if v, found := h.Get(f); found {
			out[i] = OptionalString{Value: v, Valid: true}
		}
	}
	return out, nil
}

// HSet stores every pair and returns how many fields were created
func (e *Engine) HSet(key string, pairs ...storage.FieldValue) (int, error) {
	h, err := e.db().EnsureHash(key)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, p := range pairs {
		if !h.Set(p.Field, p.Value) {
			created++
		}
	}
	return created, nil
}

// HSetNX stores value only if field does not exist
func (e *Engine) HSetNX(key, field, value string) (bool, error) {
	h, err := e.db().EnsureHash(key)
	if err != nil {
		return false, err
	}
	return h.SetNX(field, value), nil
}
