package lineage

import (
	"reflect"
	"testing"

	"github.com/nsxbet/redshift-tables/pkg/types"
)

func sampleReferences() []types.TableReference {
	return []types.TableReference{
		{Schema: "staging", Table: "orders", Kind: types.ReferenceStatic},
		{Schema: "sales", Table: "orders", Kind: types.ReferenceStatic},
		{Schema: "landing", Table: "v_suffix", Kind: types.ReferenceDynamic},
		{Schema: "sales", Table: "customers", Kind: types.ReferenceStatic},
	}
}

func TestResult_Summary(t *testing.T) {
	result := newResult(sampleReferences(), false)

	want := Summary{Total: 4, Static: 3, Dynamic: 1}
	if result.Summary != want {
		t.Errorf("Summary = %+v, want %+v", result.Summary, want)
	}
}

func TestResult_HasDynamic(t *testing.T) {
	tests := []struct {
		name     string
		result   *Result
		expected bool
	}{
		{
			name:     "no dynamic",
			result:   &Result{Summary: Summary{Total: 2, Static: 2}},
			expected: false,
		},
		{
			name:     "has dynamic",
			result:   &Result{Summary: Summary{Total: 1, Dynamic: 1}},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.result.HasDynamic()
			if got != tt.expected {
				t.Errorf("HasDynamic() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestResult_IsEmpty(t *testing.T) {
	if !newResult(nil, false).IsEmpty() {
		t.Error("IsEmpty() = false for a result without references")
	}
	if newResult(sampleReferences(), false).IsEmpty() {
		t.Error("IsEmpty() = true for a result with references")
	}
}

func TestResult_Tables(t *testing.T) {
	tests := []struct {
		name   string
		sorted bool
		want   []string
	}{
		{
			name:   "first seen order",
			sorted: false,
			want: []string{
				"staging.orders",
				"sales.orders",
				"landing.v_suffix (by_parameter)",
				"sales.customers",
			},
		},
		{
			name:   "sorted",
			sorted: true,
			want: []string{
				"landing.v_suffix (by_parameter)",
				"sales.customers",
				"sales.orders",
				"staging.orders",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newResult(sampleReferences(), tt.sorted).Tables()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tables() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResult_Schemas(t *testing.T) {
	got := newResult(sampleReferences(), false).Schemas()
	want := []string{"landing", "sales", "staging"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Schemas() = %v, want %v", got, want)
	}
}

func TestResult_FilterByKind(t *testing.T) {
	result := newResult(sampleReferences(), false)

	dynamic := result.FilterByKind(types.ReferenceDynamic)
	if len(dynamic) != 1 || dynamic[0].Table != "v_suffix" {
		t.Errorf("FilterByKind(dynamic) = %v", dynamic)
	}

	static := result.FilterByKind(types.ReferenceStatic)
	if len(static) != 3 {
		t.Errorf("FilterByKind(static) returned %d references, want 3", len(static))
	}
}

func TestResult_String(t *testing.T) {
	got := newResult(sampleReferences(), false).String()
	want := "Tables: 4 total (3 static, 1 dynamic)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
