package storage

import "math/rand/v2"

// dict is a map that also keeps its keys in a dense slice,
// so a uniformly random entry can be picked in O(1).
// Deletion swaps the last slot into the freed one; order is not stable.
type dict[V any] struct {
	index map[string]int
	keys  []string
	vals  []V
}

func newDict[V any]() *dict[V] {
	return &dict[V]{index: make(map[string]int)}
}

func (d *dict[V]) Len() int {
	return len(d.keys)
}

func (d *dict[V]) Get(key string) (V, bool) {
	i, ok := d.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return d.vals[i], true
}

func (d *dict[V]) Has(key string) bool {
	_, ok := d.index[key]
	return ok
}

// Put stores the value and reports whether the key is new
func (d *dict[V]) Put(key string, val V) bool {
	if i, ok := d.index[key]; ok {
		d.vals[i] = val
		return false
	}
	d.index[key] = len(d.keys)
	d.keys = append(d.keys, key)
	d.vals = append(d.vals, val)
	return true
}

// Delete removes the key and returns the value it held
func (d *dict[V]) Delete(key string) (V, bool) {
	var zero V

	i, ok := d.index[key]
	if !ok {
		return zero, false
	}
	val := d.vals[i]

	last := len(d.keys) - 1
	if i != last {
		d.keys[i] = d.keys[last]
		d.vals[i] = d.vals[last]
		d.index[d.keys[i]] = i
	}
	d.keys[last] = ""
	d.vals[last] = zero
	d.keys = d.keys[:last]
	d.vals = d.vals[:last]
	delete(d.index, key)

	return val, true
}

// Random returns a uniformly chosen entry
func (d *dict[V]) Random(r *rand.Rand) (string, V, bool) {
	if len(d.keys) == 0 {
		var zero V
		return "", zero, false
	}
	i := r.IntN(len(d.keys))
	return d.keys[i], d.vals[i], true
}

// Keys returns a copy of the keys in slot order
func (d *dict[V]) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

func (d *dict[V]) Reset() {
	d.index = make(map[string]int)
	d.keys = nil
	d.vals = nil
}

// copyWith returns a new dict whose values are produced by fn
func (d *dict[V]) copyWith(fn func(V) V) *dict[V] {
	out := &dict[V]{
		index: make(map[string]int, len(d.keys)),
		keys:  make([]string, len(d.keys)),
		vals:  make([]V, len(d.vals)),
	}
	copy(out.keys, d.keys)
	for i, v := range d.vals {
		out.vals[i] = fn(v)
		out.index[d.keys[i]] = i
	}
	return out
}
