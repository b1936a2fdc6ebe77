// Package domain holds the validated Brazilian document primitives.
//
// CPF and CNPJ are value objects: they can only be obtained through their
// fallible constructors, carry a number whose check digits are known to be
// correct, and never change afterwards. Document is a closed sum over the
// two for call sites that accept either.
//
// Usage: construct via ParseCPF, ParseCNPJ or ParseDocument at trust
// boundaries; NewCPF, NewCNPJ and NewDocument when the input is already a
// number. Must* variants are for tests and fixtures.
package domain

import (
	"strings"

	"docbr/pkg/checkdigit"
	dErrors "docbr/pkg/domain-errors"
	"docbr/pkg/platform/digits"
)

// checkNumber enforces the numeric invariant shared by CPF and CNPJ.
func checkNumber(kind checkdigit.Kind, v uint64) error {
	if !checkdigit.ValidNumber(kind, v) {
		return dErrors.New(dErrors.CodeInvalidFormat, "invalid "+strings.ToUpper(kind.String()))
	}
	return nil
}

// parseNumber accepts the punctuated or plain text form of kind and returns
// its validated numeric value.
func parseNumber(kind checkdigit.Kind, s string) (uint64, error) {
	if !checkdigit.LooksLikeFormatted(kind, s) && !checkdigit.LooksLikePlain(kind, s) {
		return 0, dErrors.New(dErrors.CodeInvalidFormat, "invalid "+strings.ToUpper(kind.String())+" format")
	}
	v, ok := digits.ParseUint(s)
	if !ok {
		return 0, dErrors.New(dErrors.CodeInvalidFormat, "invalid "+strings.ToUpper(kind.String())+" format")
	}
	if err := checkNumber(kind, v); err != nil {
		return 0, err
	}
	return v, nil
}

// canonical renders v zero-padded to width. Widths below 1 render as 1.
func canonical(v uint64, width int) string {
	if width < 1 {
		width = 1
	}
	return digits.Pad(v, width)
}

// formatted renders v at the kind's width with a separator placed before
// each index listed in seps.
func formatted(v uint64, width int, seps map[int]byte) string {
	ds := digits.FromUint(v, width)
	var b strings.Builder
	b.Grow(width + len(seps))
	for i, d := range ds {
		if sep, ok := seps[i]; ok {
			b.WriteByte(sep)
		}
		b.WriteByte('0' + d)
	}
	return b.String()
}

func digitsOf(v uint64, kind checkdigit.Kind) []uint8 {
	return digits.FromUint(v, kind.Width())
}
