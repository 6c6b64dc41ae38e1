package storage

// SortedSet shares the Set lifecycle. Score-ordered commands are not implemented
type SortedSet struct {
	expiry
	members *dict[struct{}]
}

// NewSortedSet creates an empty SortedSet entity
func NewSortedSet() *SortedSet {
	return &SortedSet{members: newDict[struct{}]()}
}

func (z *SortedSet) Type() DataType { return TypeZSet }

func (z *SortedSet) IsEmpty() bool { return z.members.Len() == 0 }

func (z *SortedSet) Card() int { return z.members.Len() }

// Members returns a snapshot of all members
func (z *SortedSet) Members() []string { return z.members.Keys() }

func (z *SortedSet) clone() Entity {
	return &SortedSet{
		expiry:  z.expiry,
		members: z.members.copyWith(func(v struct{}) struct{} { return v }),
	}
}
