package infer

import "testing"

func TestSuffixRule(t *testing.T) {
	tests := []struct {
		column   string
		token    string
		wantHint string
		wantOK   bool
	}{
		{"customer_id", "id", "customer", true},
		{"order_item_id", "id", "order_item", true},
		{"order_no", "no", "order", true},
		{"product_ref", "ref", "product", true},
		{"id", "id", "", false},     // bare marker, no hint
		{"_id", "id", "", false},    // empty hint
		{"total", "id", "", false},  // no marker
		{"idx", "id", "", false},    // marker not delimited
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			hint, ok := suffixRule{token: tt.token}.Match(tt.column)
			if hint != tt.wantHint || ok != tt.wantOK {
				t.Errorf("suffixRule{%s}.Match(%q) = (%q, %v), want (%q, %v)",
					tt.token, tt.column, hint, ok, tt.wantHint, tt.wantOK)
			}
		})
	}
}

func TestPrefixRule(t *testing.T) {
	tests := []struct {
		column   string
		token    string
		wantHint string
		wantOK   bool
	}{
		{"id_customer", "id", "customer", true},
		{"fk_customer", "fk", "customer", true},
		{"fk_order_item", "fk", "order_item", true},
		{"fk", "fk", "", false},
		{"fk_", "fk", "", false},
		{"fkx_customer", "fk", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			hint, ok := prefixRule{token: tt.token}.Match(tt.column)
			if hint != tt.wantHint || ok != tt.wantOK {
				t.Errorf("prefixRule{%s}.Match(%q) = (%q, %v), want (%q, %v)",
					tt.token, tt.column, hint, ok, tt.wantHint, tt.wantOK)
			}
		})
	}
}

func TestDefaultRules_CoverTokenVocabulary(t *testing.T) {
	rules := DefaultRules()
	if len(rules) != 2*len(identTokens) {
		t.Fatalf("DefaultRules() returned %d rules, want %d", len(rules), 2*len(identTokens))
	}

	// Every token must be recognized in both positions by some rule.
	for _, tok := range identTokens {
		for _, column := range []string{"customer_" + tok, tok + "_customer"} {
			matched := false
			for _, r := range rules {
				if hint, ok := r.Match(column); ok && hint == "customer" {
					matched = true
					break
				}
			}
			if !matched {
				t.Errorf("no default rule matched %q", column)
			}
		}
	}
}

func TestDefaultCommonColumns_ExcludesBareID(t *testing.T) {
	common := DefaultCommonColumns()
	if common["id"] {
		t.Error("bare \"id\" must not be a common join column")
	}
	if !common["sku"] || !common["email"] {
		t.Error("expected sku and email in the common join column set")
	}
}
