package domain

import (
	"cmp"

	"docbr/pkg/checkdigit"
)

var cpfSeparators = map[int]byte{3: '.', 6: '.', 9: '-'}

// CPF is a validated 11-digit personal identifier.
//
// Invariants:
//   - Number is below 10^11
//   - The last two digits are the check digits of the first nine
type CPF struct {
	value uint64
	set   bool
}

// NewCPF validates v as a CPF number.
//
// Errors: CodeInvalidFormat when v has wrong check digits or more than 11
// digits.
func NewCPF(v uint64) (CPF, error) {
	if err := checkNumber(checkdigit.CPF, v); err != nil {
		return CPF{}, err
	}
	return CPF{value: v, set: true}, nil
}

// ParseCPF accepts "000.000.000-00" or "00000000000".
//
// Errors: CodeInvalidFormat when s matches neither layout or its check
// digits are wrong.
func ParseCPF(s string) (CPF, error) {
	v, err := parseNumber(checkdigit.CPF, s)
	if err != nil {
		return CPF{}, err
	}
	return CPF{value: v, set: true}, nil
}

// MustCPF parses s, panicking if invalid.
// Use only in tests or when the value is known to be valid.
func MustCPF(s string) CPF {
	c, err := ParseCPF(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Number returns the numeric value.
func (c CPF) Number() uint64 {
	return c.value
}

// Canonical returns the number zero-padded to width digits. It never
// truncates, so a width shorter than the number yields all of its digits,
// and a width below 1 is treated as 1.
func (c CPF) Canonical(width int) string {
	return canonical(c.value, width)
}

// String returns the 11-digit canonical form.
func (c CPF) String() string {
	return canonical(c.value, checkdigit.CPF.Width())
}

// Formatted returns the punctuated form, e.g. 111.444.777-35.
func (c CPF) Formatted() string {
	return formatted(c.value, checkdigit.CPF.Width(), cpfSeparators)
}

// Digits returns the 11-digit decomposition.
func (c CPF) Digits() []uint8 {
	return digitsOf(c.value, checkdigit.CPF)
}

// Compare orders CPFs by numeric value.
func (c CPF) Compare(other CPF) int {
	return cmp.Compare(c.value, other.value)
}

// IsZero returns true if this is the zero value (uninitialized).
// The all-zero CPF obtained from a constructor is not zero.
func (c CPF) IsZero() bool {
	return !c.set
}

// MarshalText renders the canonical digits.
func (c CPF) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses either accepted text form.
func (c *CPF) UnmarshalText(text []byte) error {
	parsed, err := ParseCPF(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
