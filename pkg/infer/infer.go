// Package infer guesses foreign-key-like relationships between catalog
// tables from column naming conventions alone. It never consults real
// constraint metadata: two tables are considered related when one carries a
// column whose name embeds the other's name ("customer_id", "fk_customer"),
// or when both share a well-known join column ("sku", "email").
//
// Inference is deterministic: candidates are discovered in input table and
// column order, and the first candidate per deduplication key wins. An empty
// result is a valid, non-error outcome.
package infer

import (
	"fmt"
	"strings"

	"github.com/tablemap/tablemap/pkg/schema"
)

// Relation is an inferred join between two tables on a column.
// The direction (which table is Source) follows discovery order and does not
// claim to match true foreign-key direction; consumers should treat it as an
// undirected association with a rendering direction.
type Relation struct {
	Source string `json:"source" bson:"source"` // table owning the matched column
	Target string `json:"target" bson:"target"` // table the column appears to reference
	Column string `json:"column" bson:"column"` // joining column name, as written in the source table
}

// Key returns the deduplication key for the relation: the two table names in
// sorted order plus the lower-cased column. At most one relation per key
// survives inference.
func (r Relation) Key() string {
	a, b := r.Source, r.Target
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("%s|%s-%s", a, b, strings.ToLower(r.Column))
}

// Inferencer scans table pairs for relationship candidates.
// The zero value is not usable; construct with New.
type Inferencer struct {
	rules  []MatchRule
	common map[string]bool
}

// Option customizes an Inferencer.
type Option func(*Inferencer)

// WithRules replaces the default naming pattern rules.
func WithRules(rules []MatchRule) Option {
	return func(inf *Inferencer) { inf.rules = rules }
}

// WithCommonColumns replaces the default common join column set.
// Names are matched lower-cased.
func WithCommonColumns(common map[string]bool) Option {
	return func(inf *Inferencer) { inf.common = common }
}

// New creates an Inferencer with the default rule table and common column
// set, then applies any options.
func New(opts ...Option) *Inferencer {
	inf := &Inferencer{
		rules:  DefaultRules(),
		common: DefaultCommonColumns(),
	}
	for _, opt := range opts {
		opt(inf)
	}
	return inf
}

// tableIndex precomputes the lower-cased lookups used in the pair scan.
type tableIndex struct {
	loweredName string
	columns     map[string]bool // lower-cased column names
}

// Infer scans every ordered pair of distinct tables and returns the
// deduplicated relation list. A table is never related to itself, and at
// most one relation exists per (table pair, column) key.
func (inf *Inferencer) Infer(tables []schema.Table) []Relation {
	if len(tables) < 2 {
		return nil
	}

	index := make([]tableIndex, len(tables))
	for i, t := range tables {
		cols := make(map[string]bool, len(t.Columns))
		for _, c := range t.Columns {
			cols[strings.ToLower(c.Name)] = true
		}
		index[i] = tableIndex{
			loweredName: strings.ToLower(t.Name),
			columns:     cols,
		}
	}

	seen := make(map[string]bool)
	var relations []Relation

	for i, src := range tables {
		for j := range tables {
			if i == j {
				continue
			}
			tgt := index[j]
			for _, col := range src.Columns {
				lowered := strings.ToLower(col.Name)
				if !inf.matches(lowered, tgt) {
					continue
				}
				rel := Relation{
					Source: src.Name,
					Target: tables[j].Name,
					Column: col.Name,
				}
				if key := rel.Key(); !seen[key] {
					seen[key] = true
					relations = append(relations, rel)
				}
			}
		}
	}

	return relations
}

// matches reports whether a lower-cased column in the source table points at
// the target table: either as a shared common join column, or via a naming
// pattern whose hint appears in the target's name or column set.
func (inf *Inferencer) matches(column string, target tableIndex) bool {
	if inf.common[column] {
		return target.columns[column]
	}
	for _, rule := range inf.rules {
		hint, ok := rule.Match(column)
		if !ok {
			continue
		}
		if strings.Contains(target.loweredName, hint) || target.columns[column] {
			return true
		}
	}
	return false
}
