package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"docbr/internal/validation"
	"docbr/pkg/checkdigit"
	dErrors "docbr/pkg/domain-errors"
	"docbr/pkg/platform/httputil"
	"docbr/pkg/requestcontext"
)

// Service defines the interface for document validation operations.
type Service interface {
	Check(ctx context.Context, req validation.CheckRequest) (*validation.Result, error)
	CheckBatch(ctx context.Context, reqs []validation.CheckRequest) ([]validation.Result, error)
	CheckDigits(ctx context.Context, kind checkdigit.Kind, root string) (*validation.Result, error)
}

// Handler wires document endpoints to the validation service.
type Handler struct {
	service  Service
	logger   *slog.Logger
	maxBatch int
}

// New constructs a document handler. maxBatch caps batch request size.
func New(service Service, logger *slog.Logger, maxBatch int) *Handler {
	return &Handler{
		service:  service,
		logger:   logger,
		maxBatch: maxBatch,
	}
}

// Register mounts document endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/v1/documents", func(r chi.Router) {
		r.Post("/check", h.HandleCheck)
		r.Post("/check/batch", h.HandleCheckBatch)
		r.Post("/check-digits", h.HandleCheckDigits)
		r.Get("/{document}", h.HandleLookup)
	})
}

// HandleCheck handles POST /v1/documents/check requests.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CheckRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	h.check(w, ctx, requestID, req.ToDomain())
}

// HandleLookup handles GET /v1/documents/{document}, inferring the kind.
// The segment is percent-decoded, so a formatted CNPJ arrives with its
// slash escaped as %2F.
func (h *Handler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	document, err := url.PathUnescape(chi.URLParam(r, "document"))
	if err != nil {
		h.logger.WarnContext(ctx, "malformed document path segment",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "document path segment is not valid percent-encoding"))
		return
	}

	req := CheckRequest{Document: document}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.check(w, ctx, requestID, req.ToDomain())
}

func (h *Handler) check(w http.ResponseWriter, ctx context.Context, requestID string, req validation.CheckRequest) {
	start := time.Now()
	result, err := h.service.Check(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "document check failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "document checked",
		"request_id", requestID,
		"kind", result.Kind.String(),
		"valid", result.Valid,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandleCheckBatch handles POST /v1/documents/check/batch requests.
func (h *Handler) HandleCheckBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req := NewBatchRequest(h.maxBatch)
	if !httputil.DecodeInto(w, r, h.logger, ctx, requestID, req) {
		return
	}

	results, err := h.service.CheckBatch(ctx, req.ToDomain())
	if err != nil {
		h.logger.ErrorContext(ctx, "batch check failed",
			"request_id", requestID,
			"size", len(req.Documents),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	resp := FromResults(results)
	h.logger.InfoContext(ctx, "batch checked",
		"request_id", requestID,
		"size", len(results),
		"valid", resp.Valid,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleCheckDigits handles POST /v1/documents/check-digits requests.
func (h *Handler) HandleCheckDigits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CheckDigitsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.CheckDigits(ctx, req.ParsedKind(), req.Root)
	if err != nil {
		h.logger.WarnContext(ctx, "check digit computation failed",
			"request_id", requestID,
			"kind", req.Kind,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "check digits computed",
		"request_id", requestID,
		"kind", result.Kind.String(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}
