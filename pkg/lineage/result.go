package lineage

import (
	"fmt"
	"sort"

	"github.com/nsxbet/redshift-tables/pkg/procedure"
	"github.com/nsxbet/redshift-tables/pkg/types"
)

// Result contains the tables found in one procedure source.
type Result struct {
	// References holds every table found, without duplicates.
	References []types.TableReference `json:"references" yaml:"references"`

	// Summary provides counts by reference kind.
	Summary Summary `json:"summary" yaml:"summary"`
}

// Summary provides aggregate statistics about the references found.
type Summary struct {
	// Total number of references (static + dynamic)
	Total int `json:"total" yaml:"total"`

	// Static is the count of tables named directly in the source.
	Static int `json:"static" yaml:"static"`

	// Dynamic is the count of tables whose name is built from a parameter.
	Dynamic int `json:"dynamic" yaml:"dynamic"`
}

// ProcedureResult is the analysis of one procedure cut out of a larger source.
type ProcedureResult struct {
	Procedure procedure.Procedure `json:"procedure" yaml:"procedure"`
	Result    *Result             `json:"result" yaml:"result"`
}

// Tables returns the references in their string form.
func (r *Result) Tables() []string {
	tables := make([]string, 0, len(r.References))
	for _, ref := range r.References {
		tables = append(tables, ref.String())
	}
	return tables
}

// Schemas returns the distinct schemas referenced, sorted.
func (r *Result) Schemas() []string {
	seen := make(map[string]bool)
	var schemas []string
	for _, ref := range r.References {
		if !seen[ref.Schema] {
			seen[ref.Schema] = true
			schemas = append(schemas, ref.Schema)
		}
	}
	sort.Strings(schemas)
	return schemas
}

// FilterByKind returns a new slice containing only references of the given kind.
func (r *Result) FilterByKind(kind types.ReferenceKind) []types.TableReference {
	filtered := make([]types.TableReference, 0)
	for _, ref := range r.References {
		if ref.Kind == kind {
			filtered = append(filtered, ref)
		}
	}
	return filtered
}

// HasDynamic returns true if any table name is assembled from a parameter.
//
// Such references name a schema but not the concrete table, so impact
// analysis has to treat the whole schema as touched.
func (r *Result) HasDynamic() bool {
	return r.Summary.Dynamic > 0
}

// IsEmpty returns true if no schema-qualified table was found.
func (r *Result) IsEmpty() bool {
	return r.Summary.Total == 0
}

// String returns a human-readable summary of the result.
//
// Example output:
//
//	Tables: 5 total (4 static, 1 dynamic)
func (r *Result) String() string {
	return fmt.Sprintf(
		"Tables: %d total (%d static, %d dynamic)",
		r.Summary.Total,
		r.Summary.Static,
		r.Summary.Dynamic,
	)
}

// newResult builds a Result, sorting the references by their string form when asked.
func newResult(refs []types.TableReference, sorted bool) *Result {
	if sorted {
		sort.SliceStable(refs, func(i, j int) bool {
			return refs[i].String() < refs[j].String()
		})
	}
	return &Result{
		References: refs,
		Summary:    calculateSummary(refs),
	}
}

// calculateSummary computes aggregate statistics from references
func calculateSummary(refs []types.TableReference) Summary {
	summary := Summary{}
	for _, ref := range refs {
		summary.Total++
		switch ref.Kind {
		case types.ReferenceStatic:
			summary.Static++
		case types.ReferenceDynamic:
			summary.Dynamic++
		}
	}
	return summary
}
