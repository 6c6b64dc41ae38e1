package storage

import "math/bits"

const (
	maxStringLength = 512 << 20
	maxBitOffset    = maxStringLength*8 - 1
)

// String holds a byte sequence. Numeric commands parse it on every call
type String struct {
	expiry
	value []byte
}

// NewString creates a String entity holding value
func NewString(value string) *String {
	return &String{value: []byte(value)}
}

func (s *String) Type() DataType { return TypeString }

func (s *String) IsEmpty() bool { return len(s.value) == 0 }

// Value returns a snapshot of the stored bytes
func (s *String) Value() string { return string(s.value) }

func (s *String) Len() int { return len(s.value) }

// Append adds value at the end and returns the new length
func (s *String) Append(value string) int {
	s.value = append(s.value, value...)
	return len(s.value)
}

// GetRange returns the substring between the inclusive offsets start and end
func (s *String) GetRange(start, end int) string {
	start, end, ok := normalizeRange(start, end, len(s.value))
	if !ok {
		return ""
	}
	return string(s.value[start : end+1])
}

// SetRange overwrites the bytes starting at offset, padding with zero bytes
// when offset lies past the end. Returns the new length
func (s *String) SetRange(offset int, value string) (int, error) {
	if offset < 0 {
		return 0, ErrOffsetOutOfRange
	}
	if value == "" {
		return len(s.value), nil
	}
	if offset > maxStringLength-len(value) {
		return 0, ErrStringTooLong
	}

	if need := offset + len(value); need > len(s.value) {
		s.grow(need)
	}
	copy(s.value[offset:], value)

	return len(s.value), nil
}

// IncrBy adds delta to the integer value and stores the result
func (s *String) IncrBy(delta int64) (int64, error) {
	n, err := incrInteger(string(s.value), delta)
	if err != nil {
		return 0, err
	}
	s.value = []byte(formatInt(n))
	return n, nil
}

// IncrByFloat adds delta to the numeric value and returns the stored representation
func (s *String) IncrByFloat(delta float64) (string, error) {
	v, err := incrFloat(string(s.value), delta)
	if err != nil {
		return "", err
	}
	s.value = []byte(v)
	return v, nil
}

// SetBit sets or clears the bit at offset, growing the value as needed. Returns the previous bit
func (s *String) SetBit(offset int64, bit int) (int, error) {
	if offset < 0 || offset > maxBitOffset {
		return 0, ErrBitOffset
	}
	if bit != 0 && bit != 1 {
		return 0, ErrBitValue
	}

	pos := int(offset >> 3)
	if pos >= len(s.value) {
		s.grow(pos + 1)
	}

	mask := byte(1 << (7 - uint(offset&7)))
	old := 0
	if s.value[pos]&mask != 0 {
		old = 1
	}

	if bit == 1 {
		s.value[pos] |= mask
	} else {
		s.value[pos] &^= mask
	}

	return old, nil
}

// GetBit returns the bit at offset; bits past the end are 0
func (s *String) GetBit(offset int64) int {
	if offset < 0 {
		return 0
	}
	pos := offset >> 3
	if pos >= int64(len(s.value)) {
		return 0
	}
	return int(s.value[pos]>>(7-uint(offset&7))) & 1
}

// BitCount counts the set bits in the inclusive byte range [start, end]
func (s *String) BitCount(start, end int) int {
	start, end, ok := normalizeRange(start, end, len(s.value))
	if !ok {
		return 0
	}

	count := 0
	for _, b := range s.value[start : end+1] {
		count += bits.OnesCount8(b)
	}
	return count
}

// grow extends the value with zero bytes up to n
func (s *String) grow(n int) {
	if n <= cap(s.value) {
		old := len(s.value)
		s.value = s.value[:n]
		clear(s.value[old:])
		return
	}
	buf := make([]byte, n)
	copy(buf, s.value)
	s.value = buf
}

func (s *String) clone() Entity {
	c := &String{expiry: s.expiry, value: make([]byte, len(s.value))}
	copy(c.value, s.value)
	return c
}
