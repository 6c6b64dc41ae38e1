package storage

// FieldValue is one entry of a Hash
type FieldValue struct {
	Field string
	Value string
}

// Hash maps unique field names to values. Field order is stable between
// reads as long as the hash is not modified
type Hash struct {
	expiry
	fields *dict[string]
}

// NewHash creates an empty Hash entity
func NewHash() *Hash {
	return &Hash{fields: newDict[string]()}
}

func (h *Hash) Type() DataType { return TypeHash }

func (h *Hash) IsEmpty() bool { return h.fields.Len() == 0 }

// Set stores value under field and reports whether the field already existed before the write
func (h *Hash) Set(field, value string) bool {
	return !h.fields.Put(field, value)
}

// SetNX stores value only if field is absent. Returns true if the write happened
func (h *Hash) SetNX(field, value string) bool {
	if h.fields.Has(field) {
		return false
	}
	h.fields.Put(field, value)
	return true
}

func (h *Hash) Get(field string) (string, bool) {
	return h.fields.Get(field)
}

// GetAll returns a snapshot of every field and value
func (h *Hash) GetAll() []FieldValue {
	out := make([]FieldValue, len(h.fields.keys))
	for i, f := range h.fields.keys {
		out[i] = FieldValue{Field: f, Value: h.fields.vals[i]}
	}
	return out
}

// Keys returns the field names
func (h *Hash) Keys() []string {
	return h.fields.Keys()
}

// Values returns the values in the same order as Keys
func (h *Hash) Values() []string {
	out := make([]string, len(h.fields.vals))
	copy(out, h.fields.vals)
	return out
}

func (h *Hash) Len() int { return h.fields.Len() }

func (h *Hash) Exists(field string) bool { return h.fields.Has(field) }

// Del removes fields and returns how many were present
func (h *Hash) Del(fields ...string) int {
	removed := 0
	for _, f := range fields {
		if _, ok := h.fields.Delete(f); ok {
			removed++
		}
	}
	return removed
}

// IncrBy adds delta to the integer held in field, a missing field counts as "0"
func (h *Hash) IncrBy(field string, delta int64) (int64, error) {
	cur, ok := h.fields.Get(field)
	if !ok {
		cur = "0"
	}
	n, err := incrInteger(cur, delta)
	if err != nil {
		return 0, err
	}
	h.fields.Put(field, formatInt(n))
	return n, nil
}

// IncrByFloat adds delta to the number held in field, a missing field counts as "0"
func (h *Hash) IncrByFloat(field string, delta float64) (string, error) {
	cur, ok := h.fields.Get(field)
	if !ok {
		cur = "0"
	}
	v, err := incrFloat(cur, delta)
	if err != nil {
		return "", err
	}
	h.fields.Put(field, v)
	return v, nil
}

func (h *Hash) clone() Entity {
	return &Hash{
		expiry: h.expiry,
		fields: h.fields.copyWith(func(v string) string { return v }),
	}
}
