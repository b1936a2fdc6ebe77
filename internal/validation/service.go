package validation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"docbr/internal/validation/metrics"
	"docbr/pkg/checkdigit"
	"docbr/pkg/domain"
	dErrors "docbr/pkg/domain-errors"
	"docbr/pkg/platform/digits"
	"docbr/pkg/requestcontext"
)

const defaultBatchLimit = 8

// Service checks and completes CPF and CNPJ numbers.
type Service struct {
	logger     *slog.Logger
	metrics    *metrics.Metrics
	batchLimit int
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithBatchLimit bounds how many documents of one batch are checked at once.
// Non-positive values keep the default.
func WithBatchLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchLimit = n
		}
	}
}

func New(opts ...Option) *Service {
	s := &Service{
		logger:     slog.Default(),
		batchLimit: defaultBatchLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Check validates a single document.
//
// Errors: CodeValidation for an unsupported kind, CodeTimeout when ctx is
// done. An invalid document is not an error.
func (s *Service) Check(ctx context.Context, req CheckRequest) (*Result, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveLatency("check", time.Since(start)) }()

	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	result, err := s.check(req)
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "document checked",
		"request_id", requestcontext.RequestID(ctx),
		"kind", result.Kind.String(),
		"valid", result.Valid,
	)
	return &result, nil
}

// CheckBatch validates documents concurrently, bounded by the batch limit.
// Results keep the order of reqs.
func (s *Service) CheckBatch(ctx context.Context, reqs []CheckRequest) ([]Result, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveLatency("batch", time.Since(start)) }()
	s.metrics.ObserveBatchSize(len(reqs))

	results := make([]Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchLimit)
	for i, req := range reqs {
		g.Go(func() error {
			if err := ctxErr(gctx); err != nil {
				return err
			}
			r, err := s.check(req)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.WarnContext(ctx, "batch check failed",
			"request_id", requestcontext.RequestID(ctx),
			"size", len(reqs),
			"error", err,
		)
		return nil, err
	}

	valid := 0
	for _, r := range results {
		if r.Valid {
			valid++
		}
	}
	s.logger.DebugContext(ctx, "batch checked",
		"request_id", requestcontext.RequestID(ctx),
		"size", len(reqs),
		"valid", valid,
	)
	return results, nil
}

// CheckDigits completes root with its two check digits. Non-digit
// characters in root are ignored.
//
// Errors: CodeInvalidArgument when kind is unsupported or root does not have
// exactly the kind's root width in digits.
func (s *Service) CheckDigits(ctx context.Context, kind checkdigit.Kind, root string) (*Result, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveLatency("check_digits", time.Since(start)) }()

	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	full, err := checkdigit.Complete(kind, digits.Extract(root))
	if err != nil {
		return nil, err
	}
	v, ok := digits.ToUint(full)
	if !ok {
		return nil, dErrors.New(dErrors.CodeInternal, "completed document overflowed")
	}

	var d domain.Document
	switch kind {
	case checkdigit.CPF:
		c, err := domain.NewCPF(v)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "completed CPF failed validation")
		}
		d = domain.DocumentFromCPF(c)
	case checkdigit.CNPJ:
		c, err := domain.NewCNPJ(v)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "completed CNPJ failed validation")
		}
		d = domain.DocumentFromCNPJ(c)
	}

	result := validResult(root, d)
	return &result, nil
}

func (s *Service) check(req CheckRequest) (Result, error) {
	var (
		d   domain.Document
		err error
	)
	switch req.Kind {
	case checkdigit.Unknown:
		d, err = domain.ParseDocument(req.Input)
	case checkdigit.CPF:
		var c domain.CPF
		if c, err = domain.ParseCPF(req.Input); err == nil {
			d = domain.DocumentFromCPF(c)
		}
	case checkdigit.CNPJ:
		var c domain.CNPJ
		if c, err = domain.ParseCNPJ(req.Input); err == nil {
			d = domain.DocumentFromCNPJ(c)
		}
	default:
		return Result{}, dErrors.New(dErrors.CodeValidation, "unsupported document kind")
	}

	if err != nil {
		s.metrics.IncrementOutcome(req.Kind.String(), false)
		return invalidResult(req.Input, req.Kind, reason(err)), nil
	}
	s.metrics.IncrementOutcome(d.Kind().String(), true)
	return validResult(req.Input, d), nil
}

func reason(err error) string {
	var de *dErrors.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

func ctxErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "request cancelled")
	}
	return nil
}
