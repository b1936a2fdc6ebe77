package validation

import (
	"docbr/pkg/checkdigit"
	"docbr/pkg/domain"
)

// CheckRequest asks whether Input is a valid document. Kind Unknown means
// infer the kind; CPF or CNPJ force that layout.
type CheckRequest struct {
	Kind  checkdigit.Kind
	Input string
}

// Result is the outcome of a check. Invalid documents are a Result with
// Valid false and a Reason, not an error.
type Result struct {
	Input     string
	Kind      checkdigit.Kind
	Valid     bool
	Number    uint64
	Canonical string
	Formatted string
	Reason    string
}

func validResult(input string, d domain.Document) Result {
	return Result{
		Input:     input,
		Kind:      d.Kind(),
		Valid:     true,
		Number:    d.Number(),
		Canonical: d.String(),
		Formatted: d.Formatted(),
	}
}

func invalidResult(input string, kind checkdigit.Kind, reason string) Result {
	return Result{
		Input:  input,
		Kind:   kind,
		Valid:  false,
		Reason: reason,
	}
}
