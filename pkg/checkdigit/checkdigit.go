// Package checkdigit computes and verifies the modulo-11 check digits of
// Brazilian CPF and CNPJ numbers.
//
// Domain Purity: every function here is pure. Predicates never fail; they
// return false on any malformed input.
package checkdigit

import (
	"regexp"
	"strconv"

	dErrors "docbr/pkg/domain-errors"
	"docbr/pkg/platform/digits"
)

// Kind identifies which identifier scheme a number belongs to.
type Kind uint8

const (
	Unknown Kind = iota
	// CPF is the 11-digit personal identifier (Cadastro de Pessoas Físicas).
	CPF
	// CNPJ is the 14-digit organizational identifier (Cadastro Nacional da
	// Pessoa Jurídica).
	CNPJ
)

// scheme holds the fixed parameters of one identifier kind.
type scheme struct {
	width     int
	limit     uint64
	dv1       []uint
	dv2       []uint
	formatted *regexp.Regexp
	plain     *regexp.Regexp
}

// dv2 weights are one longer than the root; the last one applies to dv1.
var schemes = map[Kind]scheme{
	CPF: {
		width:     11,
		limit:     100_000_000_000,
		dv1:       []uint{1, 2, 3, 4, 5, 6, 7, 8, 9},
		dv2:       []uint{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		formatted: regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`),
		plain:     regexp.MustCompile(`^[0-9]{11}$`),
	},
	CNPJ: {
		width:     14,
		limit:     100_000_000_000_000,
		dv1:       []uint{6, 7, 8, 9, 2, 3, 4, 5, 6, 7, 8, 9},
		dv2:       []uint{5, 6, 7, 8, 9, 2, 3, 4, 5, 6, 7, 8, 9},
		formatted: regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`),
		plain:     regexp.MustCompile(`^[0-9]{14}$`),
	},
}

// ParseKind maps "cpf" or "cnpj" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "cpf":
		return CPF, nil
	case "cnpj":
		return CNPJ, nil
	}
	return Unknown, dErrors.New(dErrors.CodeInvalidArgument, "unknown document kind: "+s)
}

func (k Kind) String() string {
	switch k {
	case CPF:
		return "cpf"
	case CNPJ:
		return "cnpj"
	}
	return "unknown"
}

// IsValid reports whether k is a supported kind.
func (k Kind) IsValid() bool {
	_, ok := schemes[k]
	return ok
}

// Width is the total number of digits, check digits included.
func (k Kind) Width() int {
	return schemes[k].width
}

// RootWidth is the number of digits before the two check digits.
func (k Kind) RootWidth() int {
	if !k.IsValid() {
		return 0
	}
	return schemes[k].width - 2
}

// Limit is the exclusive upper bound of numeric values of this kind.
func (k Kind) Limit() uint64 {
	return schemes[k].limit
}

// Compute returns the two check digits for root.
//
// Errors: CodeInvalidArgument when kind is unknown, root does not have
// exactly RootWidth elements, or an element is not a decimal digit.
func Compute(kind Kind, root []uint8) (dv1, dv2 uint8, err error) {
	s, ok := schemes[kind]
	if !ok {
		return 0, 0, dErrors.New(dErrors.CodeInvalidArgument, "unknown document kind")
	}
	if len(root) != s.width-2 {
		return 0, 0, dErrors.New(dErrors.CodeInvalidArgument,
			kind.String()+" root must have "+strconv.Itoa(s.width-2)+" digits")
	}

	var sum1, sum2 uint
	for i, d := range root {
		if d > 9 {
			return 0, 0, dErrors.New(dErrors.CodeInvalidArgument, "root digits must be between 0 and 9")
		}
		sum1 += uint(d) * s.dv1[i]
		sum2 += uint(d) * s.dv2[i]
	}

	dv1 = mod11(sum1)
	sum2 += uint(dv1) * s.dv2[len(s.dv2)-1]
	dv2 = mod11(sum2)
	return dv1, dv2, nil
}

// mod11 reduces sum modulo 11. Remainder 10 has no single-digit form and
// maps to 0.
func mod11(sum uint) uint8 {
	r := sum % 11
	if r == 10 {
		return 0
	}
	return uint8(r)
}

// Complete appends the two check digits to a copy of root.
func Complete(kind Kind, root []uint8) ([]uint8, error) {
	dv1, dv2, err := Compute(kind, root)
	if err != nil {
		return nil, err
	}
	out := make([]uint8, 0, len(root)+2)
	out = append(out, root...)
	return append(out, dv1, dv2), nil
}

// Validate reports whether the trailing two digits of full are the check
// digits of its root. It returns false for a full sequence of the wrong
// length, non-decimal elements, or an unknown kind.
func Validate(kind Kind, full []uint8) bool {
	if !kind.IsValid() || len(full) != kind.Width() {
		return false
	}
	rw := kind.RootWidth()
	dv1, dv2, err := Compute(kind, full[:rw])
	if err != nil {
		return false
	}
	return full[rw] == dv1 && full[rw+1] == dv2
}

// ValidateString validates an unpunctuated digit string.
func ValidateString(kind Kind, s string) bool {
	if !LooksLikePlain(kind, s) {
		return false
	}
	ds, ok := digits.FromString(s)
	return ok && Validate(kind, ds)
}

// ValidNumber reports whether v, zero-padded to the kind's width, carries
// valid check digits. Values at or above Limit are rejected.
func ValidNumber(kind Kind, v uint64) bool {
	if !kind.IsValid() || v >= kind.Limit() {
		return false
	}
	return Validate(kind, digits.FromUint(v, kind.Width()))
}

// IsCPF reports whether v is a valid CPF number.
func IsCPF(v uint64) bool {
	return ValidNumber(CPF, v)
}

// IsCNPJ reports whether v is a valid CNPJ number.
func IsCNPJ(v uint64) bool {
	return ValidNumber(CNPJ, v)
}

// LooksLikeFormatted reports whether text has the punctuated layout of kind:
// 000.000.000-00 for CPF, 00.000.000/0000-00 for CNPJ. Check digits are not
// verified.
func LooksLikeFormatted(kind Kind, text string) bool {
	s, ok := schemes[kind]
	return ok && s.formatted.MatchString(text)
}

// LooksLikePlain reports whether text is exactly Width ASCII digits.
func LooksLikePlain(kind Kind, text string) bool {
	s, ok := schemes[kind]
	return ok && s.plain.MatchString(text)
}
