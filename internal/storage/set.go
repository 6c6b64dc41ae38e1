package storage

import "math/rand/v2"

// Set holds unique members without ordering guarantees.
// A nil *Set behaves as the empty set in read-only methods
type Set struct {
	expiry
	members *dict[struct{}]
}

// NewSet creates an empty Set entity
func NewSet() *Set {
	return &Set{members: newDict[struct{}]()}
}

func (s *Set) Type() DataType { return TypeSet }

func (s *Set) IsEmpty() bool { return s.Card() == 0 }

// Add inserts members and returns how many were not already present
func (s *Set) Add(members ...string) int {
	added := 0
	for _, m := range members {
		if s.members.Put(m, struct{}{}) {
			added++
		}
	}
	return added
}

// Rem removes members and returns how many were present
func (s *Set) Rem(members ...string) int {
	removed := 0
	for _, m := range members {
		if _, ok := s.members.Delete(m); ok {
			removed++
		}
	}
	return removed
}

func (s *Set) Card() int {
	if s == nil {
		return 0
	}
	return s.members.Len()
}

func (s *Set) IsMember(member string) bool {
	if s == nil {
		return false
	}
	return s.members.Has(member)
}

// Members returns a snapshot of all members
func (s *Set) Members() []string {
	if s == nil {
		return []string{}
	}
	return s.members.Keys()
}

// Pop removes and returns a uniformly chosen member
func (s *Set) Pop(r *rand.Rand) (string, bool) {
	m, _, ok := s.members.Random(r)
	if !ok {
		return "", false
	}
	s.members.Delete(m)
	return m, true
}

// maxRandomCount bounds the size of a reply drawn with repetition
const maxRandomCount = 1 << 24

// RandMembers returns up to count distinct members when count is positive,
// or exactly -count members drawn with repetition when count is negative
func (s *Set) RandMembers(r *rand.Rand, count int) ([]string, error) {
	if count < -maxRandomCount {
		return nil, ErrCountOutOfRange
	}

	n := s.Card()
	if count == 0 || n == 0 {
		return []string{}, nil
	}

	if count < 0 {
		out := make([]string, -count)
		for i := range out {
			out[i], _, _ = s.members.Random(r)
		}
		return out, nil
	}

	// partial Fisher-Yates over a copy of the members
	pool := s.members.Keys()
	count = min(count, n)
	for i := 0; i < count; i++ {
		j := i + r.IntN(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count], nil
}

// Diff returns the members of s that are in none of the others
func (s *Set) Diff(others ...*Set) []string {
	out := []string{}
	for _, m := range s.Members() {
		found := false
		for _, o := range others {
			if o.IsMember(m) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, m)
		}
	}
	return out
}

// Inter returns the members of s that are in every one of the others
func (s *Set) Inter(others ...*Set) []string {
	out := []string{}
	for _, o := range others {
		if o.Card() == 0 {
			return out
		}
	}

	for _, m := range s.Members() {
		inAll := true
		for _, o := range others {
			if !o.IsMember(m) {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, m)
		}
	}
	return out
}

// Union returns the members present in s or any of the others
func (s *Set) Union(others ...*Set) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, set := range append([]*Set{s}, others...) {
		for _, m := range set.Members() {
			if _, ok := seen[m]; !ok {
				seen[m] = struct{}{}
				out = append(out, m)
			}
		}
	}
	return out
}

func (s *Set) clone() Entity {
	return &Set{
		expiry:  s.expiry,
		members: s.members.copyWith(func(v struct{}) struct{} { return v }),
	}
}
