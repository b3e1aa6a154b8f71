// Package convert orchestrates the dialect parsers, the materializer and
// the assembler into the two public conversion entry points: a one-shot
// line-DSL conversion and an incremental three-document session.
package convert

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/traderx-tools/traderx-convert/internal/assemble"
	"github.com/traderx-tools/traderx-convert/internal/domain"
	"github.com/traderx-tools/traderx-convert/internal/dsl"
	"github.com/traderx-tools/traderx-convert/internal/legacy"
	"github.com/traderx-tools/traderx-convert/internal/logger"
	"github.com/traderx-tools/traderx-convert/internal/metrics"
)

// Dialect labels used in logs and metrics
const (
	DialectTrader     = "trader"
	DialectTraderPlus = "traderplus"
)

// Result is what a conversion hands to the packaging collaborator: the
// virtual file map plus the non-fatal diagnostics collected on the way.
// An empty Files map from a session submission means the document triplet
// is not complete yet.
type Result struct {
	Files       map[string]string   `json:"files"`
	Diagnostics []domain.Diagnostic `json:"diagnostics"`
}

// Empty reports whether the conversion produced no output.
func (r *Result) Empty() bool {
	return len(r.Files) == 0
}

// Service defines the conversion operations offered to transports.
type Service interface {
	// ConvertTraderConfig converts a full line-DSL document in one shot.
	ConvertTraderConfig(ctx context.Context, text string) (*Result, error)

	// NewSession opens an incremental session for the three-document
	// legacy JSON dialect.
	NewSession() *Session
}

// Config tunes a conversion service.
type Config struct {
	OutputRoot      string
	DefaultCurrency string
	CacheSize       int
}

type service struct {
	root  string
	opts  assemble.Options
	cache *lru.Cache[string, *Result]
}

// NewService creates a conversion service. Results of one-shot conversions
// are cached by content hash; conversion is deterministic so identical
// input always yields an identical file map.
func NewService(cfg Config) (Service, error) {
	size := cfg.CacheSize
	if size <= 0 {
		size = 1
	}
	cache, err := lru.New[string, *Result](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversion cache: %w", err)
	}
	return &service{
		root:  cfg.OutputRoot,
		opts:  assemble.Options{DefaultCurrency: cfg.DefaultCurrency},
		cache: cache,
	}, nil
}

func (s *service) ConvertTraderConfig(ctx context.Context, text string) (*Result, error) {
	log := logger.FromContext(ctx)

	key := contentHash(text)
	if cached, ok := s.cache.Get(key); ok {
		metrics.CacheHits.Inc()
		log.Info("Conversion served from cache", "dialect", DialectTrader)
		return cached, nil
	}

	cfg, diags, err := dsl.Parse(text)
	if err != nil {
		metrics.ConversionFailures.WithLabelValues(DialectTrader).Inc()
		return nil, fmt.Errorf("trader config: %w", err)
	}

	out, asmDiags, err := assemble.FromLineConfig(cfg, s.opts)
	if err != nil {
		metrics.ConversionFailures.WithLabelValues(DialectTrader).Inc()
		return nil, err
	}
	diags = append(diags, asmDiags...)

	files, err := out.Files(s.root)
	if err != nil {
		metrics.ConversionFailures.WithLabelValues(DialectTrader).Inc()
		return nil, err
	}

	result := &Result{Files: files, Diagnostics: diags}
	s.cache.Add(key, result)

	metrics.ConversionsTotal.WithLabelValues(DialectTrader).Inc()
	metrics.SkippedRows.WithLabelValues(DialectTrader).Add(float64(skippedRows(diags)))
	metrics.FilesEmitted.WithLabelValues(DialectTrader).Add(float64(len(files)))
	log.Info("Trader config converted",
		"traders", len(out.General.Traders),
		"categories", len(out.Categories),
		"products", len(out.Products),
		"warnings", len(diags))
	return result, nil
}

func (s *service) NewSession() *Session {
	return &Session{svc: s, store: legacy.NewStore()}
}

// Session accumulates legacy JSON documents until the triplet is present.
// Submissions after that point re-run assembly against the updated store.
// A Session holds per-invocation state only and is not safe for concurrent
// use; transports create one per request.
type Session struct {
	svc   *service
	store *legacy.Store
}

// Submit classifies and stores one document, then attempts generation.
// Until all three documents are present the returned result has an empty
// file map; that is the normal deferred state, not a failure.
func (s *Session) Submit(ctx context.Context, data []byte) (*Result, error) {
	log := logger.FromContext(ctx)

	kind, err := s.store.Submit(data)
	if err != nil {
		metrics.ConversionFailures.WithLabelValues(DialectTraderPlus).Inc()
		return nil, err
	}
	log.Info("Legacy document accepted", "kind", kind.String())

	if !s.store.Complete() {
		return &Result{Files: map[string]string{}}, nil
	}

	out, diags, err := assemble.FromLegacyStore(s.store, s.svc.opts)
	if err != nil {
		metrics.ConversionFailures.WithLabelValues(DialectTraderPlus).Inc()
		return nil, err
	}

	files, err := out.Files(s.svc.root)
	if err != nil {
		metrics.ConversionFailures.WithLabelValues(DialectTraderPlus).Inc()
		return nil, err
	}

	metrics.ConversionsTotal.WithLabelValues(DialectTraderPlus).Inc()
	metrics.SkippedRows.WithLabelValues(DialectTraderPlus).Add(float64(skippedRows(diags)))
	metrics.FilesEmitted.WithLabelValues(DialectTraderPlus).Add(float64(len(files)))
	log.Info("TraderPlus config converted",
		"traders", len(out.General.Traders),
		"categories", len(out.Categories),
		"products", len(out.Products),
		"warnings", len(diags))
	return &Result{Files: files, Diagnostics: diags}, nil
}

// Complete reports whether the session holds the full document triplet.
func (s *Session) Complete() bool {
	return s.store.Complete()
}

// skippedRows counts the diagnostics that report a dropped source row.
// Defaulting notes and clamp warnings stay out of the skip metric.
func skippedRows(diags []domain.Diagnostic) int {
	n := 0
	for _, d := range diags {
		if d.RowSkip {
			n++
		}
	}
	return n
}

func contentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
