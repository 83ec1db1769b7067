// Package procedure splits SQL files that hold several stored procedure
// definitions into one source text per procedure.
package procedure

import (
	"regexp"
	"strings"

	"github.com/nsxbet/redshift-tables/pkg/extract"
)

var headerRegex = regexp.MustCompile(
	`(?i)\bCREATE\s+(?:OR\s+REPLACE\s+)?PROCEDURE\s+("?[a-zA-Z0-9_$]+"?(?:\."?[a-zA-Z0-9_$]+"?)?)`)

// Procedure is one CREATE PROCEDURE definition cut out of a larger file.
type Procedure struct {
	// Name is the procedure name as written, without quotes. Empty for text
	// that precedes the first definition or for files without any definition.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Line is the 1-based line where the definition starts.
	Line int    `json:"line" yaml:"line"`
	Text string `json:"-" yaml:"-"`
}

// Split cuts source at every CREATE [OR REPLACE] PROCEDURE header that is not
// inside a comment or a single-quoted literal. Each piece runs up to the next header. Text before the
// first header is kept as an unnamed piece when it holds anything besides
// comments and whitespace. A source without headers comes back whole.
func Split(source string) []Procedure {
	spans := extract.CommentAndLiteralSpans(source)

	var headers [][]int
	for _, loc := range headerRegex.FindAllStringSubmatchIndex(source, -1) {
		if extract.InSpan(spans, loc[0]) {
			continue
		}
		headers = append(headers, loc)
	}

	if len(headers) == 0 {
		if strings.TrimSpace(extract.StripComments(source)) == "" {
			return nil
		}
		return []Procedure{{Line: 1, Text: source}}
	}

	procs := make([]Procedure, 0, len(headers)+1)
	if preamble := source[:headers[0][0]]; strings.TrimSpace(extract.StripComments(preamble)) != "" {
		procs = append(procs, Procedure{Line: 1, Text: preamble})
	}

	for i, loc := range headers {
		end := len(source)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		procs = append(procs, Procedure{
			Name: strings.ReplaceAll(source[loc[2]:loc[3]], `"`, ""),
			Line: 1 + strings.Count(source[:loc[0]], "\n"),
			Text: source[loc[0]:end],
		})
	}

	return procs
}
