package extract

import (
	"strings"

	"github.com/nsxbet/redshift-tables/pkg/types"
)

// Normalize merges the raw captures of the extraction passes into a
// duplicate-free list of references, in first-seen order with static names
// ahead of dynamic ones.
//
// Names are case-folded unless preserveCase is set, double quotes are
// removed, and anything that is not schema-qualified is dropped. A three-part
// database.schema.table name keeps its schema.table tail. A schema that belongs
// to a dynamic match is never emitted on its own.
func Normalize(raw []string, dynamic []DynamicMatch, preserveCase bool) []types.TableReference {
	fold := func(s string) string {
		if preserveCase {
			return s
		}
		return strings.ToLower(s)
	}

	dynamicSchemas := make(map[string]struct{}, len(dynamic))
	for _, match := range dynamic {
		dynamicSchemas[fold(match.Schema)] = struct{}{}
	}

	seen := make(map[string]struct{}, len(raw)+len(dynamic))
	refs := make([]types.TableReference, 0, len(raw)+len(dynamic))
	add := func(ref types.TableReference) {
		key := ref.String()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		refs = append(refs, ref)
	}

	for _, name := range raw {
		name = strings.ReplaceAll(fold(name), `"`, "")
		if _, ok := dynamicSchemas[strings.TrimSuffix(name, ".")]; ok {
			continue
		}
		schema, table, ok := splitQualified(name)
		if !ok {
			continue
		}
		add(types.TableReference{Schema: schema, Table: table, Kind: types.ReferenceStatic})
	}

	for _, match := range dynamic {
		add(types.TableReference{
			Schema: fold(match.Schema),
			Table:  fold(match.Parameter),
			Kind:   types.ReferenceDynamic,
		})
	}

	return refs
}

// splitQualified splits schema.table, or database.schema.table, into its
// schema and table. Every segment must be non-empty.
func splitQualified(name string) (schema, table string, ok bool) {
	parts := strings.Split(name, ".")
	for _, part := range parts {
		if part == "" {
			return "", "", false
		}
	}
	switch len(parts) {
	case 2:
		return parts[0], parts[1], true
	case 3:
		return parts[1], parts[2], true
	default:
		return "", "", false
	}
}
