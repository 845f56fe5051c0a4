package errors

import (
	"strings"
	"unicode"
)

// ValidateTableName validates a catalog table name.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
//
// Case and punctuation conventions are left to the catalog source; the
// engine only requires names it can use as stable identifiers.
func ValidateTableName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidTable, "table name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidTable, "table name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTable, "table name contains control characters: %q", name)
		}
	}

	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidTable, "table name cannot be blank")
	}

	return nil
}

// ValidateColumnName validates a column name within a table.
// Empty column names are rejected; everything else is tolerated since
// relationship inference lower-cases and pattern-matches names itself.
func ValidateColumnName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidColumn, "column name cannot be empty")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidColumn, "column name contains control characters: %q", name)
		}
	}

	return nil
}
