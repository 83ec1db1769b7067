// Package pkg provides table dependency extraction for Redshift stored procedures.
//
// redshift-tables reports the schema-qualified tables a procedure reads from or
// writes to. It works on the source text with lexical patterns; it neither
// parses the SQL nor talks to a database.
//
// # Package Structure
//
//   - lineage: High-level API with configuration, size limits and per-procedure analysis (recommended starting point)
//   - extract: The comment stripper, the pattern passes and the normalizer
//   - procedure: Splits files holding several CREATE PROCEDURE definitions
//   - types: The TableReference data model
//   - config: Configuration loading
//   - logger: Logging abstraction layer
//
// # Getting Started
//
//	import "github.com/nsxbet/redshift-tables/pkg/lineage"
//
//	func main() {
//	    a := lineage.New()
//	    result, err := a.Analyze(context.Background(), procedureSource)
//	    // result.Tables() -> ["sales.orders", "staging.v_suffix (by_parameter)"]
//	}
//
// Or, without configuration:
//
//	tables := extract.Tables(procedureSource, false)
//
// # What Is Recognized
//
//   - FROM, JOIN, INSERT INTO, UPDATE and DELETE FROM followed by a table
//   - CREATE TABLE ... AS targets
//   - Implicit joins of up to three entries: FROM a.x, b.y, c.z
//   - FROM schema.' || param, reported as "schema.param (by_parameter)"
//
// Reads and writes are reported together. Names without a schema are dropped,
// as are CTE names and aliases. Comments are ignored; string literals are not.
//
// # Configuration
//
// The analyzer can be configured via YAML/JSON files or programmatically:
//
//	a := lineage.New()
//	if err := a.WithConfig("redshift-tables.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//
//	a = lineage.New().WithConfigObject(&config.Config{
//	    PreserveCase:  true,
//	    MaxInputBytes: 4 << 20,
//	})
//
// # Thread Safety
//
// All functions in extract are pure and safe for concurrent use. Patterns are
// compiled once and matched by Go's RE2 engine, whose running time is linear
// in the input size.
//
// # Error Handling
//
// Extraction itself never fails: text that matches nothing yields an empty
// result. The lineage package returns errors only for sources above the size
// limit and for cancelled contexts.
package pkg
