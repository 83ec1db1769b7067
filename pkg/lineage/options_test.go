package lineage

import (
	"testing"

	"github.com/nsxbet/redshift-tables/pkg/config"
)

func TestWithPreserveCase(t *testing.T) {
	opts := &analyzeOptions{}
	WithPreserveCase(true)(opts)

	if opts.preserveCase == nil || !*opts.preserveCase {
		t.Error("WithPreserveCase() did not set preserveCase")
	}
}

func TestWithSorted(t *testing.T) {
	opts := &analyzeOptions{}
	WithSorted(false)(opts)

	if opts.sorted == nil || *opts.sorted {
		t.Error("WithSorted() did not set sorted to false")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name             string
		cfg              *config.Config
		opts             []AnalyzeOption
		wantPreserveCase bool
		wantSorted       bool
	}{
		{
			name: "defaults",
			cfg:  config.DefaultConfig(),
		},
		{
			name:             "from config",
			cfg:              &config.Config{PreserveCase: true, Sort: true},
			wantPreserveCase: true,
			wantSorted:       true,
		},
		{
			name:             "options override config",
			cfg:              &config.Config{PreserveCase: true, Sort: false},
			opts:             []AnalyzeOption{WithPreserveCase(false), WithSorted(true)},
			wantPreserveCase: false,
			wantSorted:       true,
		},
		{
			name:             "last option wins",
			cfg:              config.DefaultConfig(),
			opts:             []AnalyzeOption{WithPreserveCase(true), WithPreserveCase(false)},
			wantPreserveCase: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New().WithConfigObject(tt.cfg)
			preserveCase, sorted := a.resolve(tt.opts)
			if preserveCase != tt.wantPreserveCase {
				t.Errorf("preserveCase = %v, want %v", preserveCase, tt.wantPreserveCase)
			}
			if sorted != tt.wantSorted {
				t.Errorf("sorted = %v, want %v", sorted, tt.wantSorted)
			}
		})
	}
}
