package storage

import (
	"math"
	"strconv"
)

// ParseInteger accepts only the canonical decimal form of a signed 64-bit integer:
// no sign prefix "+", no leading zeros, no decimal point or exponent, no spaces
func ParseInteger(s string) (int64, error) {
	if s == "" || s[0] == '+' {
		return 0, ErrNotInteger
	}

	digits := s
	if digits[0] == '-' {
		digits = digits[1:]
	}
	if len(digits) == 0 || (digits[0] == '0' && len(s) > 1) {
		return 0, ErrNotInteger
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrNotInteger
	}
	return n, nil
}

// ParseFloat accepts finite decimal numbers
func ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotFloat
	}
	return f, nil
}

// FormatFloat renders f with the shortest representation that round-trips
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

// incrInteger adds delta to the integer held in current. An empty current counts as zero
func incrInteger(current string, delta int64) (int64, error) {
	var n int64
	if current != "" {
		var err error
		if n, err = ParseInteger(current); err != nil {
			return 0, err
		}
	}

	if (delta > 0 && n > math.MaxInt64-delta) || (delta < 0 && n < math.MinInt64-delta) {
		return 0, ErrOverflow
	}
	return n + delta, nil
}

// incrFloat adds delta to the number held in current. An empty current counts as zero
func incrFloat(current string, delta float64) (string, error) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return "", ErrNotFloat
	}

	var f float64
	if current != "" {
		var err error
		if f, err = ParseFloat(current); err != nil {
			return "", err
		}
	}

	f += delta
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", ErrNaN
	}
	return FormatFloat(f), nil
}

// normalizeRange resolves an inclusive [start, stop] range with negative
// offsets counted from the end of a sequence of length n.
// ok is false when the resulting range is empty
func normalizeRange(start, stop, n int) (int, int, bool) {
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if n == 0 || start > stop || start >= n {
		return 0, 0, false
	}
	return start, stop, true
}
