package handler

import (
	"docbr/internal/validation"
	"docbr/pkg/checkdigit"
)

// ResultResponse is the HTTP response for a single document.
type ResultResponse struct {
	Input     string `json:"input"`
	Kind      string `json:"kind,omitempty"`
	Valid     bool   `json:"valid"`
	Number    uint64 `json:"number,omitempty"`
	Canonical string `json:"canonical,omitempty"`
	Formatted string `json:"formatted,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// BatchResponse is the HTTP response for POST /v1/documents/check/batch.
type BatchResponse struct {
	Results []ResultResponse `json:"results"`
	Valid   int              `json:"valid"`
	Invalid int              `json:"invalid"`
}

// FromResult converts a service Result to an HTTP response.
func FromResult(result *validation.Result) *ResultResponse {
	resp := &ResultResponse{
		Input:     result.Input,
		Valid:     result.Valid,
		Number:    result.Number,
		Canonical: result.Canonical,
		Formatted: result.Formatted,
		Reason:    result.Reason,
	}
	if result.Kind != checkdigit.Unknown {
		resp.Kind = result.Kind.String()
	}
	return resp
}

// FromResults converts batch results, counting outcomes.
func FromResults(results []validation.Result) *BatchResponse {
	resp := &BatchResponse{Results: make([]ResultResponse, len(results))}
	for i := range results {
		resp.Results[i] = *FromResult(&results[i])
		if results[i].Valid {
			resp.Valid++
		} else {
			resp.Invalid++
		}
	}
	return resp
}
