package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nsxbet/redshift-tables/pkg/types"
)

func TestKeywordReferences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "all keywords",
			input: "SELECT * FROM a.b JOIN c.d; INSERT INTO e.f VALUES (1); UPDATE g.h SET x = 1; DELETE FROM i.j;",
			want:  []string{"a.b", "c.d", "e.f", "g.h", "i.j"},
		},
		{
			name:  "case insensitive with line breaks",
			input: "insert\n  into\tmart.daily select 1 from\n\tsales.orders",
			want:  []string{"mart.daily", "sales.orders"},
		},
		{
			name:  "quoting combinations keep their quotes",
			input: `FROM "s"."t" JOIN s."t" JOIN "s".t JOIN s.t`,
			want:  []string{`"s"."t"`, `s."t"`, `"s".t`, "s.t"},
		},
		{
			name:  "unqualified names are captured raw",
			input: "FROM orders",
			want:  []string{"orders"},
		},
		{
			name:  "keyword must be a whole word",
			input: "SELECT wherefrom a.b",
			want:  nil,
		},
		{
			name:  "no references",
			input: "SELECT 1",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeywordReferences(tt.input))
		})
	}
}

func TestCTASTargets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain",
			input: "CREATE TABLE mart.summary AS SELECT 1",
			want:  []string{"mart.summary"},
		},
		{
			name:  "quoted",
			input: `create table "Mart"."Summary" as select 1`,
			want:  []string{`"Mart"."Summary"`},
		},
		{
			name:  "column list is not a CTAS",
			input: "CREATE TABLE mart.summary (id INT)",
			want:  nil,
		},
		{
			name:  "AS must be a whole word",
			input: "CREATE TABLE mart.summary ASSERT",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CTASTargets(tt.input))
		})
	}
}

func TestImplicitJoinReferences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "two entries",
			input: "FROM a.x, b.y WHERE 1 = 1",
			want:  []string{"a.x", "b.y"},
		},
		{
			name:  "three entries are reported by both patterns",
			input: "FROM a.x, b.y, c.z",
			want:  []string{"a.x", "b.y", "a.x", "b.y", "c.z"},
		},
		{
			name:  "aliases",
			input: "FROM a.x ax, b.y AS by_alias",
			want:  []string{"a.x", "b.y"},
		},
		{
			name:  "keyword taken as alias",
			input: "FROM s.t AS, s.u",
			want:  []string{"s.t", "s.u"},
		},
		{
			name:  "explicit join is not an implicit join",
			input: "FROM a.x JOIN b.y ON 1 = 1",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ImplicitJoinReferences(tt.input))
		})
	}
}

func TestDynamicReferences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []DynamicMatch
	}{
		{
			name:  "no spaces",
			input: "FROM staging.'||v_suffix",
			want:  []DynamicMatch{{Schema: "staging", Parameter: "v_suffix"}},
		},
		{
			name:  "spaces around operator",
			input: "'SELECT * from Landing.' || P_Table || ''",
			want:  []DynamicMatch{{Schema: "Landing", Parameter: "P_Table"}},
		},
		{
			name:  "static reference",
			input: "FROM staging.orders",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DynamicReferences(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	raw := []string{
		`"Sales"."Orders"`,
		"sales.orders",
		"orders",
		"staging.",
		".orphan",
		"dev.mart.daily",
		"a.b.c.d",
		"Staging",
	}
	dynamic := []DynamicMatch{{Schema: "Staging", Parameter: "V_Suffix"}}

	assert.Equal(t, []types.TableReference{
		{Schema: "sales", Table: "orders", Kind: types.ReferenceStatic},
		{Schema: "mart", Table: "daily", Kind: types.ReferenceStatic},
		{Schema: "staging", Table: "v_suffix", Kind: types.ReferenceDynamic},
	}, Normalize(raw, dynamic, false))

	assert.Equal(t, []types.TableReference{
		{Schema: "Sales", Table: "Orders", Kind: types.ReferenceStatic},
		{Schema: "sales", Table: "orders", Kind: types.ReferenceStatic},
		{Schema: "mart", Table: "daily", Kind: types.ReferenceStatic},
		{Schema: "Staging", Table: "V_Suffix", Kind: types.ReferenceDynamic},
	}, Normalize(raw, dynamic, true))

	assert.Empty(t, Normalize(nil, nil, false))
}
