// Package extract finds the tables a Redshift stored procedure reads from or
// writes to, without parsing the SQL.
//
// The source is stripped of comments and then scanned by independent pattern
// passes, one per SQL construct:
//
//   - FROM, JOIN, INSERT INTO, UPDATE and DELETE FROM followed by a name
//   - CREATE TABLE name AS
//   - implicit joins of two or three entries (FROM a.x, b.y)
//   - FROM schema.' || param, a table name assembled at runtime
//
// The captures are then merged by Normalize. Only schema-qualified names are
// reported: there is no search_path to resolve an unqualified name against.
// CTE names, aliases and temp tables are not tracked, and text inside string
// literals is matched like any other text.
//
//	tables := extract.Tables(procedureSource, false)
//	// e.g. "sales.orders", "staging.v_suffix (by_parameter)"
package extract

import "github.com/nsxbet/redshift-tables/pkg/types"

// Tables returns the schema-qualified tables referenced by source, formatted
// as "schema.table" or "schema.table (by_parameter)". Names are lowercased
// unless preserveCase is set. The result never contains duplicates.
func Tables(source string, preserveCase bool) []string {
	refs := References(source, preserveCase)
	tables := make([]string, 0, len(refs))
	for _, ref := range refs {
		tables = append(tables, ref.String())
	}
	return tables
}

// References is Tables without the final formatting step.
func References(source string, preserveCase bool) []types.TableReference {
	cleaned := StripComments(source)

	var raw []string
	raw = append(raw, KeywordReferences(cleaned)...)
	raw = append(raw, CTASTargets(cleaned)...)
	raw = append(raw, ImplicitJoinReferences(cleaned)...)

	return Normalize(raw, DynamicReferences(cleaned), preserveCase)
}
