package types

import "strings"

// ReferenceKind tells whether a table name was written out in the source or
// assembled at runtime from a parameter.
type ReferenceKind string

const (
	// ReferenceStatic is a table named directly in the procedure text.
	ReferenceStatic ReferenceKind = "static"
	// ReferenceDynamic is a table whose name is built by concatenating a
	// schema prefix with a parameter.
	ReferenceDynamic ReferenceKind = "dynamic"
)

// ByParameterSuffix marks dynamic references in their string form.
const ByParameterSuffix = " (by_parameter)"

// TableReference is a schema-qualified table found in a procedure.
type TableReference struct {
	Schema string        `json:"schema" yaml:"schema"`
	Table  string        `json:"table" yaml:"table"`
	Kind   ReferenceKind `json:"kind" yaml:"kind"`
}

// String returns "schema.table", with the by_parameter marker for dynamic references.
func (r TableReference) String() string {
	name := r.Schema + "." + r.Table
	if r.Kind == ReferenceDynamic {
		return name + ByParameterSuffix
	}
	return name
}

// IsDynamic reports whether the reference was built from a parameter.
func (r TableReference) IsDynamic() bool {
	return r.Kind == ReferenceDynamic
}

// ParseTableReference is the inverse of String. It returns false when s is not
// a schema-qualified name with exactly one dot and two non-empty segments.
func ParseTableReference(s string) (TableReference, bool) {
	kind := ReferenceStatic
	if strings.HasSuffix(s, ByParameterSuffix) {
		kind = ReferenceDynamic
		s = strings.TrimSuffix(s, ByParameterSuffix)
	}
	schema, table, ok := strings.Cut(s, ".")
	if !ok || schema == "" || table == "" || strings.Contains(table, ".") {
		return TableReference{}, false
	}
	return TableReference{Schema: schema, Table: table, Kind: kind}, true
}
