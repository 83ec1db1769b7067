package extract

import "regexp"

// Building blocks shared by the reference patterns. A qualified identifier is
// one of the quoting combinations of schema.table, or a bare dotted path.
// Order matters: alternatives are tried left to right.
const (
	word   = `[a-zA-Z0-9_]+`
	quoted = `"` + word + `"`
	bare   = `[a-zA-Z_][a-zA-Z0-9_.]+`

	qualifiedIdentifier = `(` +
		quoted + `\.` + quoted + `|` +
		word + `\.` + quoted + `|` +
		quoted + `\.` + word + `|` +
		bare + `)`

	// alias is an optional correlation name between a FROM-list entry and
	// the comma that follows it. Any word is accepted, keywords included:
	// "FROM s.t AS, s.u" reads AS as the alias of s.t.
	alias = `(?:\s+(?:AS\s+)?[a-zA-Z_][a-zA-Z0-9_]*)?`

	listSeparator = alias + `\s*,\s*`
)

// Go's regexp engine is RE2: matching is linear in the input, so none of these
// patterns can backtrack catastrophically on long or adversarial procedures.
var (
	commentRegex = regexp.MustCompile(`--[^\n]*|(?s:/\*.*?\*/)`)

	// commentOrLiteralRegex also matches single-quoted literals, with ''
	// as an escaped quote. Scanned leftmost, so a quote inside a comment
	// does not open a literal.
	commentOrLiteralRegex = regexp.MustCompile(commentRegex.String() + `|'(?:[^']|'')*'`)

	keywordRegex = regexp.MustCompile(
		`(?i)\b(?:FROM|JOIN|INSERT\s+INTO|UPDATE|DELETE\s+FROM)\s+` + qualifiedIdentifier)

	ctasRegex = regexp.MustCompile(
		`(?i)\bCREATE\s+TABLE\s+` + qualifiedIdentifier + `\s+AS\b`)

	implicitJoinRegex = regexp.MustCompile(
		`(?i)\bFROM\s+` + qualifiedIdentifier + listSeparator + qualifiedIdentifier)

	implicitJoin3Regex = regexp.MustCompile(
		`(?i)\bFROM\s+` + qualifiedIdentifier + listSeparator + qualifiedIdentifier + listSeparator + qualifiedIdentifier)

	dynamicRegex = regexp.MustCompile(
		`(?i)FROM\s+(` + word + `)\.'\s*\|\|\s*(` + word + `)`)
)
