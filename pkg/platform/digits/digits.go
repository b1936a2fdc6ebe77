// Package digits converts between unsigned integers, text and fixed-width
// decimal digit sequences.
package digits

import (
	"strconv"
	"strings"
)

// FromUint returns the width least-significant decimal digits of v, most
// significant first, left-padded with zeros.
//
// Example:
//
//	FromUint(1234, 6)
//	// Returns: []uint8{0, 0, 1, 2, 3, 4}
func FromUint(v uint64, width int) []uint8 {
	if width <= 0 {
		return []uint8{}
	}
	out := make([]uint8, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = uint8(v % 10)
		v /= 10
	}
	return out
}

// ToUint folds a digit sequence back into its value. It reports false if any
// element is not a decimal digit or the value overflows uint64.
func ToUint(ds []uint8) (uint64, bool) {
	var v uint64
	for _, d := range ds {
		if d > 9 {
			return 0, false
		}
		if v > (^uint64(0)-uint64(d))/10 {
			return 0, false
		}
		v = v*10 + uint64(d)
	}
	return v, true
}

// Strip removes every character outside '0'-'9'.
//
// Example:
//
//	Strip("111.444.777-35")
//	// Returns: "11144477735"
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Extract returns the ASCII digits of s as a digit sequence, dropping every
// other character. It never fails; text with no digits yields an empty slice.
//
// Example:
//
//	Extract("12.3a4")
//	// Returns: []uint8{1, 2, 3, 4}
func Extract(s string) []uint8 {
	out := make([]uint8, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			out = append(out, c-'0')
		}
	}
	return out
}

// ParseUint strips s and parses what remains. It reports false when no
// digits remain or the value overflows uint64.
func ParseUint(s string) (uint64, bool) {
	stripped := Strip(s)
	if stripped == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(stripped, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FromString converts a string made only of ASCII digits into a digit
// sequence. It reports false on any other character.
func FromString(s string) ([]uint8, bool) {
	out := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		out[i] = c - '0'
	}
	return out, true
}

// Pad renders v in decimal, left-padded with zeros to at least width digits.
// It never truncates.
func Pad(v uint64, width int) string {
	s := strconv.FormatUint(v, 10)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
