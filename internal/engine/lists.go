package engine

import (
	"github.com/eternalApril/nisekv/internal/storage"
)

func (e *Engine) LIndex(key string, index int) (string, bool, error) {
	l, ok, err := e.db().GetList(key)
	if err != nil || !ok {
		return "", false, err
	}
	v, ok := l.Index(index)
	return v, ok, nil
}

// LInsert inserts value before or after pivot. Returns the new length,
// -1 if pivot was not found and 0 if the key does not exist.
// where is validated before the key is looked up
func (e *Engine) LInsert(key, where, pivot, value string) (int, error) {
	if _, err := storage.InsertAfter(where); err != nil {
		return 0, err
	}
	l, ok, err := e.db().GetList(key)
	if err != nil || !ok {
		return 0, err
	}
	return l.Insert(where, pivot, value)
}

func (e *Engine) LLen(key string) (int, error) {
	l, ok, err := e.db().GetList(key)
	if err != nil || !ok {
		return 0, err
	}
	return l.Len(), nil
}

func (e *Engine) LPop(key string) (string, bool, error) {
	l, ok, err := e.db().GetList(key)
	if err != nil || !ok {
		return "", false, err
	}
	v, ok := l.LPop()
	return v, ok, nil
}

func (e *Engine) RPop(key string) (string, bool, error) {
	l, ok, err := e.db().GetList(key)
	if err != nil || !ok {
		return "", false, err
	}
	v, ok := l.RPop()
	return v, ok, nil
}

// LPush prepends values one after another and returns the new length
func (e *Engine) LPush(key string, values ...string) (int, error) {
	l, err := e.db().EnsureList(key)
	if err != nil {
		return 0, err
	}
	return l.LPush(values...), nil
}

// LPushX is LPush for an existing list only
func (e *Engine) LPushX(key string, values ...string) (int, error) {
	l, ok, err := e.db().GetList(key)
	if err != nil || !ok {
		return 0, err
	}
	return l.LPush(values...), nil
}

// RPush appends values one after another and returns the new length
func (e *Engine) RPush(key string, values ...string) (int, error) {
	l, err := e.db().EnsureList(key)
	if err != nil {
		return 0, err
	}
	return l.RPush(values...), nil
}

// RPushX is RPush for an existing list only
func (e *Engine) RPushX(key string, values ...string) (int, error) {
	l, ok, err := e.db().GetList(key)
	if err != nil || !ok {
		return 0, err
	}
	return l.RPush(values...), nil
}

func (e *Engine) LRange(key string, start, stop int) ([]string, error) {
	l, ok, err := e.db().GetList(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}
	return l.Range(start, stop), nil
}

// LRem removes occurrences of value, see storage.List.Rem for the meaning of count
func (e *Engine) LRem(key string, count int, value string) (int, error) {
	l, ok, err := e.db().GetList(key)
	if err != nil || !ok {
		return 0, err
	}
	return l.Rem(count, value), nil
}

// LSet replaces the element at index. The key must exist
func (e *Engine) LSet(key string, index int, value string) error {
	l, ok, err := e.db().GetList(key)
	if err != nil {
		return err
	}
	if !ok {
		return storage.ErrNoSuchKey
	}
	return l.Set(index, value)
}

func (e *Engine) LTrim(key string, start, stop int) error {
	l, ok, err := e.db().GetList(key)
	if err != nil || !ok {
		return err
	}
	l.Trim(start, stop)
	return nil
}

// RPopLPush moves the tail of src to the head of dst and returns it.
// With src equal to dst the list is rotated
func (e *Engine) RPopLPush(src, dst string) (string, bool, error) {
	db := e.db()

	from, ok, err := db.GetList(src)
	if err != nil || !ok {
		return "", false, err
	}
	to, exists, err := db.GetList(dst)
	if err != nil {
		return "", false, err
	}

	v, _ := from.RPop()
	if !exists {
		to = storage.NewList()
		db.Put(dst, to)
	}
	to.LPush(v)

	return v, true, nil
}
