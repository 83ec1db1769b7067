package extract

import "regexp"

// DynamicMatch is a FROM clause whose table name is concatenated at runtime,
// as in 'SELECT * FROM staging.' || v_suffix.
type DynamicMatch struct {
	Schema    string
	Parameter string
}

// KeywordReferences returns the identifiers following FROM, JOIN, INSERT INTO,
// UPDATE and DELETE FROM. Quotes are kept at this stage.
func KeywordReferences(cleaned string) []string {
	return firstGroups(keywordRegex.FindAllStringSubmatch(cleaned, -1))
}

// CTASTargets returns the tables created by CREATE TABLE ... AS statements.
func CTASTargets(cleaned string) []string {
	return firstGroups(ctasRegex.FindAllStringSubmatch(cleaned, -1))
}

// ImplicitJoinReferences returns the identifiers of comma-separated FROM lists
// of two and three entries. The two patterns overlap on purpose; callers are
// expected to deduplicate.
func ImplicitJoinReferences(cleaned string) []string {
	var names []string
	for _, re := range []*regexp.Regexp{implicitJoinRegex, implicitJoin3Regex} {
		for _, match := range re.FindAllStringSubmatch(cleaned, -1) {
			names = append(names, match[1:]...)
		}
	}
	return names
}

// DynamicReferences returns every FROM schema.' || param construct in cleaned.
func DynamicReferences(cleaned string) []DynamicMatch {
	matches := dynamicRegex.FindAllStringSubmatch(cleaned, -1)
	if len(matches) == 0 {
		return nil
	}
	dynamic := make([]DynamicMatch, 0, len(matches))
	for _, match := range matches {
		dynamic = append(dynamic, DynamicMatch{Schema: match[1], Parameter: match[2]})
	}
	return dynamic
}

func firstGroups(matches [][]string) []string {
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match[1])
	}
	return names
}
