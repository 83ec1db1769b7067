package lineage

// AnalyzeOption is a functional option for customizing a single analysis.
type AnalyzeOption func(*analyzeOptions)

// analyzeOptions holds the per-call overrides of the analyzer configuration.
type analyzeOptions struct {
	preserveCase *bool
	sorted       *bool
}

// WithPreserveCase overrides the configured case handling for one call.
//
// Example:
//
//	result, err := a.Analyze(ctx, sql, WithPreserveCase(true))
func WithPreserveCase(preserve bool) AnalyzeOption {
	return func(opts *analyzeOptions) {
		opts.preserveCase = &preserve
	}
}

// WithSorted overrides the configured ordering for one call. Sorted results
// are in alphabetical order; otherwise tables appear in the order they were
// first found.
func WithSorted(sorted bool) AnalyzeOption {
	return func(opts *analyzeOptions) {
		opts.sorted = &sorted
	}
}
