package handler

import (
	"strconv"
	"strings"

	"docbr/internal/validation"
	"docbr/pkg/checkdigit"
	dErrors "docbr/pkg/domain-errors"
)

// maxDocumentLength bounds the raw document text. The longest accepted
// layout is 18 characters; the slack allows loose punctuation.
const maxDocumentLength = 32

// CheckRequest is the HTTP request body for POST /v1/documents/check.
type CheckRequest struct {
	Kind     string `json:"kind,omitempty"`
	Document string `json:"document"`

	// Parsed values (populated by Validate)
	parsedKind checkdigit.Kind
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *CheckRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	// Size validation (fail fast)
	if len(r.Document) > maxDocumentLength {
		return dErrors.New(dErrors.CodeValidation, "document must be at most 32 characters")
	}

	r.Document = strings.TrimSpace(r.Document)
	if r.Document == "" {
		return dErrors.New(dErrors.CodeValidation, "document is required")
	}

	kind, err := parseOptionalKind(r.Kind)
	if err != nil {
		return err
	}
	r.parsedKind = kind
	return nil
}

// ToDomain converts the validated request into a service request.
func (r *CheckRequest) ToDomain() validation.CheckRequest {
	return validation.CheckRequest{Kind: r.parsedKind, Input: r.Document}
}

// BatchRequest is the HTTP request body for POST /v1/documents/check/batch.
// Set maxDocuments before decoding to cap the batch size.
type BatchRequest struct {
	Documents []CheckRequest `json:"documents"`

	maxDocuments int
}

// NewBatchRequest returns an empty batch capped at maxDocuments entries.
// Non-positive limits disable the cap.
func NewBatchRequest(maxDocuments int) *BatchRequest {
	return &BatchRequest{maxDocuments: maxDocuments}
}

// Validate checks the batch size, then every entry.
func (r *BatchRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Documents) == 0 {
		return dErrors.New(dErrors.CodeValidation, "documents must not be empty")
	}
	if r.maxDocuments > 0 && len(r.Documents) > r.maxDocuments {
		return dErrors.New(dErrors.CodeValidation,
			"documents must contain at most "+strconv.Itoa(r.maxDocuments)+" entries")
	}
	for i := range r.Documents {
		if err := r.Documents[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ToDomain converts the validated batch into service requests.
func (r *BatchRequest) ToDomain() []validation.CheckRequest {
	out := make([]validation.CheckRequest, len(r.Documents))
	for i := range r.Documents {
		out[i] = r.Documents[i].ToDomain()
	}
	return out
}

// CheckDigitsRequest is the HTTP request body for POST /v1/documents/check-digits.
type CheckDigitsRequest struct {
	Kind string `json:"kind"`
	Root string `json:"root"`

	parsedKind checkdigit.Kind
}

func (r *CheckDigitsRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Root) > maxDocumentLength {
		return dErrors.New(dErrors.CodeValidation, "root must be at most 32 characters")
	}
	r.Kind = strings.TrimSpace(r.Kind)
	if r.Kind == "" {
		return dErrors.New(dErrors.CodeValidation, "kind is required")
	}
	kind, err := parseOptionalKind(r.Kind)
	if err != nil {
		return err
	}
	r.parsedKind = kind
	r.Root = strings.TrimSpace(r.Root)
	if r.Root == "" {
		return dErrors.New(dErrors.CodeValidation, "root is required")
	}
	return nil
}

// ParsedKind returns the validated kind.
func (r *CheckDigitsRequest) ParsedKind() checkdigit.Kind {
	return r.parsedKind
}

func parseOptionalKind(s string) (checkdigit.Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return checkdigit.Unknown, nil
	}
	kind, err := checkdigit.ParseKind(s)
	if err != nil {
		return checkdigit.Unknown, dErrors.New(dErrors.CodeValidation, "kind must be cpf or cnpj")
	}
	return kind, nil
}
