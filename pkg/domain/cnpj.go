package domain

import (
	"cmp"

	"docbr/pkg/checkdigit"
)

var cnpjSeparators = map[int]byte{2: '.', 5: '.', 8: '/', 12: '-'}

// CNPJ is a validated 14-digit organizational identifier.
//
// Invariants:
//   - Number is below 10^14
//   - The last two digits are the check digits of the first twelve
type CNPJ struct {
	value uint64
	set   bool
}

// NewCNPJ validates v as a CNPJ number.
func NewCNPJ(v uint64) (CNPJ, error) {
	if err := checkNumber(checkdigit.CNPJ, v); err != nil {
		return CNPJ{}, err
	}
	return CNPJ{value: v, set: true}, nil
}

// ParseCNPJ accepts "00.000.000/0000-00" or "00000000000000".
func ParseCNPJ(s string) (CNPJ, error) {
	v, err := parseNumber(checkdigit.CNPJ, s)
	if err != nil {
		return CNPJ{}, err
	}
	return CNPJ{value: v, set: true}, nil
}

// MustCNPJ parses s, panicking if invalid.
func MustCNPJ(s string) CNPJ {
	c, err := ParseCNPJ(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CNPJ) Number() uint64 {
	return c.value
}

// Canonical returns the number zero-padded to width digits. Widths below 1
// behave as 1; output is never truncated.
func (c CNPJ) Canonical(width int) string {
	return canonical(c.value, width)
}

// String returns the 14-digit canonical form.
func (c CNPJ) String() string {
	return canonical(c.value, checkdigit.CNPJ.Width())
}

// Formatted returns the punctuated form, e.g. 11.222.333/0001-81.
func (c CNPJ) Formatted() string {
	return formatted(c.value, checkdigit.CNPJ.Width(), cnpjSeparators)
}

func (c CNPJ) Digits() []uint8 {
	return digitsOf(c.value, checkdigit.CNPJ)
}

func (c CNPJ) Compare(other CNPJ) int {
	return cmp.Compare(c.value, other.value)
}

func (c CNPJ) IsZero() bool {
	return !c.set
}

func (c CNPJ) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *CNPJ) UnmarshalText(text []byte) error {
	parsed, err := ParseCNPJ(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
