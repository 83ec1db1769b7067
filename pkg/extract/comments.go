package extract

// StripComments removes "--" line comments and "/* */" block comments from
// source. Whichever comment opens first wins, so "--" inside a block comment
// does not eat the code that follows the block. A block comment is replaced by
// a single space, since SQL treats it as whitespace. An unterminated "/*" is
// left in place.
func StripComments(source string) string {
	return commentRegex.ReplaceAllStringFunc(source, func(comment string) string {
		if comment[0] == '/' {
			return " "
		}
		return ""
	})
}

// CommentSpans returns the [start, end) byte offsets of every comment in source.
func CommentSpans(source string) [][2]int {
	return toSpans(commentRegex.FindAllStringIndex(source, -1))
}

// CommentAndLiteralSpans is CommentSpans plus every single-quoted string
// literal. An unterminated literal is not reported.
func CommentAndLiteralSpans(source string) [][2]int {
	return toSpans(commentOrLiteralRegex.FindAllStringIndex(source, -1))
}

func toSpans(locs [][]int) [][2]int {
	spans := make([][2]int, 0, len(locs))
	for _, loc := range locs {
		spans = append(spans, [2]int{loc[0], loc[1]})
	}
	return spans
}

// InSpan reports whether offset falls inside one of spans.
func InSpan(spans [][2]int, offset int) bool {
	for _, span := range spans {
		if offset >= span[0] && offset < span[1] {
			return true
		}
	}
	return false
}
