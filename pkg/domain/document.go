package domain

import (
	"docbr/pkg/checkdigit"
	dErrors "docbr/pkg/domain-errors"
	"docbr/pkg/platform/digits"
)

// Document holds exactly one of CPF or CNPJ.
//
// Two documents are equal (==) iff they hold the same kind and the same
// number; a CPF and a CNPJ never compare equal even when their numbers do.
//
// Invariants:
//   - kind is CPF or CNPJ for every constructed Document
//   - value satisfies the invariant of the held kind
//
// The zero Document holds neither and reports IsZero.
type Document struct {
	kind  checkdigit.Kind
	value uint64
}

// DocumentFromCPF wraps a CPF.
func DocumentFromCPF(c CPF) Document {
	return Document{kind: checkdigit.CPF, value: c.value}
}

// DocumentFromCNPJ wraps a CNPJ.
func DocumentFromCNPJ(c CNPJ) Document {
	return Document{kind: checkdigit.CNPJ, value: c.value}
}

// NewDocument infers the kind of v. CPF is tried first, so a number valid
// under both schemes becomes a CPF.
//
// Errors: CodeAmbiguousOrInvalid when v is valid under neither scheme.
func NewDocument(v uint64) (Document, error) {
	if c, err := NewCPF(v); err == nil {
		return DocumentFromCPF(c), nil
	}
	if c, err := NewCNPJ(v); err == nil {
		return DocumentFromCNPJ(c), nil
	}
	return Document{}, dErrors.New(dErrors.CodeAmbiguousOrInvalid, "invalid CPF or CNPJ")
}

// ParseDocument strips every non-digit from s and infers the kind of the
// remaining number as NewDocument does.
//
// Errors: CodeAmbiguousOrInvalid when s has no digits, overflows, or is valid
// under neither scheme.
func ParseDocument(s string) (Document, error) {
	v, ok := digits.ParseUint(s)
	if !ok {
		return Document{}, dErrors.New(dErrors.CodeAmbiguousOrInvalid, "invalid CPF or CNPJ")
	}
	return NewDocument(v)
}

// MustDocument parses s, panicking if invalid.
func MustDocument(s string) Document {
	d, err := ParseDocument(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Kind reports which variant is held.
func (d Document) Kind() checkdigit.Kind {
	return d.kind
}

// CPF returns the held CPF, if any.
func (d Document) CPF() (CPF, bool) {
	if d.kind != checkdigit.CPF {
		return CPF{}, false
	}
	return CPF{value: d.value, set: true}, true
}

// CNPJ returns the held CNPJ, if any.
func (d Document) CNPJ() (CNPJ, bool) {
	if d.kind != checkdigit.CNPJ {
		return CNPJ{}, false
	}
	return CNPJ{value: d.value, set: true}, true
}

// Number returns the held numeric value, or 0 for the zero Document.
func (d Document) Number() uint64 {
	return d.value
}

// Canonical returns the held value zero-padded to width digits, with the
// same clamping as CPF.Canonical: widths below 1 behave as 1 and output is
// never truncated. The zero Document renders "".
func (d Document) Canonical(width int) string {
	switch d.kind {
	case checkdigit.CPF:
		c, _ := d.CPF()
		return c.Canonical(width)
	case checkdigit.CNPJ:
		c, _ := d.CNPJ()
		return c.Canonical(width)
	}
	return ""
}

// String returns the canonical form at the held kind's width.
func (d Document) String() string {
	return d.Canonical(d.kind.Width())
}

// Formatted returns the punctuated form of the held variant.
func (d Document) Formatted() string {
	switch d.kind {
	case checkdigit.CPF:
		c, _ := d.CPF()
		return c.Formatted()
	case checkdigit.CNPJ:
		c, _ := d.CNPJ()
		return c.Formatted()
	}
	return ""
}

// IsZero returns true if the Document holds neither variant.
func (d Document) IsZero() bool {
	return d.kind == checkdigit.Unknown
}

func (d Document) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Document) UnmarshalText(text []byte) error {
	parsed, err := ParseDocument(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
