// Package lineage provides a high-level API for finding the tables a Redshift
// stored procedure depends on.
//
// It wraps the pattern passes of package extract with configuration, an input
// size limit, cancellation and per-procedure analysis of multi-procedure files.
//
// # Quick Start
//
//	a := lineage.New()
//
//	result, err := a.Analyze(context.Background(), procedureSource)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(result)
//	for _, table := range result.Tables() {
//	    fmt.Println(table)
//	}
//
// # Using Custom Configuration
//
//	a := lineage.New()
//	if err := a.WithConfig("redshift-tables.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//	results, err := a.AnalyzeProcedures(ctx, migrationFile)
package lineage

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/nsxbet/redshift-tables/pkg/config"
	"github.com/nsxbet/redshift-tables/pkg/extract"
	"github.com/nsxbet/redshift-tables/pkg/procedure"
)

// ErrInputTooLarge is returned when a source exceeds the configured MaxInputBytes.
var ErrInputTooLarge = errors.New("procedure source exceeds size limit")

// Analyzer finds table references in procedure sources.
//
// Analyzer is safe for concurrent use by multiple goroutines as long as its
// configuration is not replaced meanwhile.
type Analyzer struct {
	config *config.Config
}

// New creates a new Analyzer with the default configuration: lowercase
// output, first-seen order and no size limit.
func New() *Analyzer {
	return &Analyzer{
		config: config.DefaultConfig(),
	}
}

// WithConfig loads configuration from a YAML or JSON file.
// This replaces the current configuration.
func (a *Analyzer) WithConfig(filename string) error {
	cfg, err := config.LoadFromFile(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to load config from %s", filename)
	}
	a.config = cfg
	return nil
}

// WithConfigObject sets a custom configuration object directly.
// This replaces the current configuration.
//
// Returns the Analyzer for method chaining.
func (a *Analyzer) WithConfigObject(cfg *config.Config) *Analyzer {
	a.config = cfg
	return a
}

// Config returns the configuration in use.
func (a *Analyzer) Config() *config.Config {
	return a.config
}

// Analyze returns the tables referenced by source.
//
// The extraction itself cannot fail. An error is returned only when the source
// is larger than MaxInputBytes, or when ctx is done before the work starts.
func (a *Analyzer) Analyze(ctx context.Context, source string, opts ...AnalyzeOption) (*Result, error) {
	if err := a.checkSize(source); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	preserveCase, sorted := a.resolve(opts)
	refs := extract.References(source, preserveCase)
	result := newResult(refs, sorted)

	slog.Debug("Analyzed procedure source",
		"bytes", len(source),
		"tables", result.Summary.Total,
		"dynamic", result.Summary.Dynamic)
	return result, nil
}

// AnalyzeProcedures splits source into its CREATE PROCEDURE definitions and
// analyzes each one. A source without definitions is analyzed as a whole.
//
// The size limit applies to the whole source. Cancellation is checked between
// procedures; on cancellation the results gathered so far are returned along
// with ctx.Err().
func (a *Analyzer) AnalyzeProcedures(ctx context.Context, source string, opts ...AnalyzeOption) ([]*ProcedureResult, error) {
	if err := a.checkSize(source); err != nil {
		return nil, err
	}

	procs := procedure.Split(source)
	slog.Debug("Split procedure source", "procedures", len(procs))

	results := make([]*ProcedureResult, 0, len(procs))
	for _, proc := range procs {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		preserveCase, sorted := a.resolve(opts)
		results = append(results, &ProcedureResult{
			Procedure: proc,
			Result:    newResult(extract.References(proc.Text, preserveCase), sorted),
		})
	}

	return results, nil
}

func (a *Analyzer) checkSize(source string) error {
	limit := a.config.MaxInputBytes
	if limit > 0 && len(source) > limit {
		return errors.Wrapf(ErrInputTooLarge, "%d bytes, limit is %d", len(source), limit)
	}
	return nil
}

// resolve applies per-call overrides on top of the configuration
func (a *Analyzer) resolve(opts []AnalyzeOption) (preserveCase, sorted bool) {
	options := &analyzeOptions{}
	for _, opt := range opts {
		opt(options)
	}

	preserveCase = a.config.PreserveCase
	if options.preserveCase != nil {
		preserveCase = *options.preserveCase
	}
	sorted = a.config.Sort
	if options.sorted != nil {
		sorted = *options.sorted
	}
	return preserveCase, sorted
}
