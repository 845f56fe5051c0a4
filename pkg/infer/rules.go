package infer

import "strings"

// MatchRule recognizes a table reference embedded in a column name.
// Match receives a lower-cased column name and returns the referenced
// table-name hint (the part of the name that is not the identifier marker)
// and true, or "" and false if the rule does not apply.
//
// Rules are deliberately declarative: adding a new naming convention means
// appending a rule here, never touching the inference loop.
type MatchRule interface {
	Match(column string) (hint string, ok bool)
}

// identTokens is the vocabulary of identifier markers recognized in
// column names ("customer_id", "fk_customer", "order_no", ...).
var identTokens = []string{"id", "fk", "code", "num", "no", "ref"}

// suffixRule matches "<hint>_<token>" column names, e.g. "customer_id".
type suffixRule struct {
	token string
}

func (r suffixRule) Match(column string) (string, bool) {
	hint, found := strings.CutSuffix(column, "_"+r.token)
	if !found || hint == "" {
		return "", false
	}
	return hint, true
}

// prefixRule matches "<token>_<hint>" column names, e.g. "id_customer".
type prefixRule struct {
	token string
}

func (r prefixRule) Match(column string) (string, bool) {
	hint, found := strings.CutPrefix(column, r.token+"_")
	if !found || hint == "" {
		return "", false
	}
	return hint, true
}

// DefaultRules returns the built-in naming pattern rules, one suffix and one
// prefix rule per identifier token. Rule order is significant: the first
// matching rule supplies the hint.
func DefaultRules() []MatchRule {
	rules := make([]MatchRule, 0, 2*len(identTokens))
	for _, tok := range identTokens {
		rules = append(rules, suffixRule{token: tok})
	}
	for _, tok := range identTokens {
		rules = append(rules, prefixRule{token: tok})
	}
	return rules
}

// DefaultCommonColumns returns the well-known join column names that two
// tables may share directly, without any embedded table reference.
// Bare "id" is deliberately absent: nearly every table has an "id" column,
// so sharing one carries no relationship signal.
func DefaultCommonColumns() map[string]bool {
	return map[string]bool{
		"uuid":  true,
		"guid":  true,
		"code":  true,
		"key":   true,
		"sku":   true,
		"email": true,
		"isbn":  true,
	}
}
