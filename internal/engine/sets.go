package engine

import (
	"github.com/eternalApril/nisekv/internal/storage"
)

// SAdd adds members and returns how many were new
func (e *Engine) SAdd(key string, members ...string) (int, error) {
	s, err := e.db().EnsureSet(key)
	if err != nil {
		return 0, err
	}
	return s.Add(members...), nil
}

func (e *Engine) SCard(key string) (int, error) {
	s, _, err := e.db().GetSet(key)
	return s.Card(), err
}

func (e *Engine) SIsMember(key, member string) (bool, error) {
	s, _, err := e.db().GetSet(key)
	return s.IsMember(member), err
}

func (e *Engine) SMembers(key string) ([]string, error) {
	s, _, err := e.db().GetSet(key)
	if err != nil {
		return nil, err
	}
	return s.Members(), nil
}

// SRem removes members and returns how many were present
func (e *Engine) SRem(key string, members ...string) (int, error) {
	s, ok, err := e.db().GetSet(key)
	if err != nil || !ok {
		return 0, err
	}
	return s.Rem(members...), nil
}

// SPop removes and returns a random member
func (e *Engine) SPop(key string) (string, bool, error) {
	db := e.db()
	s, ok, err := db.GetSet(key)
	if err != nil || !ok {
		return "", false, err
	}
	m, ok := s.Pop(db.Rand())
	return m, ok, nil
}

// SRandMember returns random members without removing them, see storage.Set.RandMembers
func (e *Engine) SRandMember(key string, count int) ([]string, error) {
	db := e.db()
	s, _, err := db.GetSet(key)
	if err != nil {
		return nil, err
	}
	return s.RandMembers(db.Rand(), count)
}

// SMove moves member from src to dst. Returns false if src does not hold it
func (e *Engine) SMove(src, dst, member string) (bool, error) {
	db := e.db()

	from, ok, err := db.GetSet(src)
	if err != nil {
		return false, err
	}
	to, exists, err := db.GetSet(dst)
	if err != nil {
		return false, err
	}

	if !ok || !from.IsMember(member) {
		return false, nil
	}
	if src == dst {
		return true, nil
	}

	from.Rem(member)
	if !exists {
		to = db.CreateSet(dst)
	}
	to.Add(member)

	return true, nil
}

// sets resolves every key to a set, nil for missing keys
func (e *Engine) sets(keys []string) ([]*storage.Set, error) {
	db := e.db()
	out := make([]*storage.Set, len(keys))
	for i, k := range keys {
		s, _, err := db.GetSet(k)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func (e *Engine) setOp(keys []string, op func(first *storage.Set, others ...*storage.Set) []string) ([]string, error) {
	if len(keys) == 0 {
		return []string{}, nil
	}
	sets, err := e.sets(keys)
	if err != nil {
		return nil, err
	}
	return op(sets[0], sets[1:]...), nil
}

// storeSet replaces dst with a set of members. An empty result deletes dst
func (e *Engine) storeSet(dst string, members []string) int {
	db := e.db()
	db.Delete(dst)
	if len(members) > 0 {
		db.CreateSet(dst).Add(members...)
	}
	return len(members)
}

// SDiff returns the members of the first set that are in none of the others
func (e *Engine) SDiff(keys ...string) ([]string, error) {
	return e.setOp(keys, (*storage.Set).Diff)
}

// SInter returns the members present in every set
func (e *Engine) SInter(keys ...string) ([]string, error) {
	return e.setOp(keys, (*storage.Set).Inter)
}

// SUnion returns the members present in any set
func (e *Engine) SUnion(keys ...string) ([]string, error) {
	return e.setOp(keys, (*storage.Set).Union)
}

// SDiffStore stores the result of SDiff in dst and returns its size
func (e *Engine) SDiffStore(dst string, keys ...string) (int, error) {
	members, err := e.SDiff(keys...)
	if err != nil {
		return 0, err
	}
	return e.storeSet(dst, members), nil
}

func (e *Engine) SInterStore(dst string, keys ...string) (int, error) {
	members, err := e.SInter(keys...)
	if err != nil {
		return 0, err
	}
	return e.storeSet(dst, members), nil
}

func (e *Engine) SUnionStore(dst string, keys ...string) (int, error) {
	members, err := e.SUnion(keys...)
	if err != nil {
		return 0, err
	}
	return e.storeSet(dst, members), nil
}
