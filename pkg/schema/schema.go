// Package schema defines the data structures for the table catalog consumed
// by the tablemap engine. These types mirror the contract of the external
// Catalog collaborator: an ordered list of tables, each with an ordered list
// of columns. The engine never inspects real database constraints; everything
// downstream works from the names carried here.
package schema

import (
	"github.com/tablemap/tablemap/pkg/errors"
)

// Column represents one attribute of a table.
type Column struct {
	// Name is the column name as reported by the catalog source.
	Name string `json:"name" bson:"name"`
	// Type is the data type string (e.g., "integer", "varchar(255)").
	// It is carried through for display; layout and inference ignore it.
	Type string `json:"type,omitempty" bson:"type,omitempty"`
	// Description is optional human-readable documentation.
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// Table represents one schema table with its ordered columns.
type Table struct {
	// Name is the table name, unique within a catalog.
	Name string `json:"name" bson:"name"`
	// RowCount is the approximate number of rows, if the source knows it.
	RowCount int64 `json:"row_count,omitempty" bson:"row_count,omitempty"`
	// Description is optional human-readable documentation.
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	// Columns contains all columns in ordinal order.
	Columns []Column `json:"columns" bson:"columns"`
}

// Column returns the column with the given name and true, or a zero Column
// and false if the table has no such column. Matching is exact.
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Catalog is the top-level input to the engine: an ordered table list.
// Order matters for determinism - inference and layout follow it.
type Catalog struct {
	Tables []Table `json:"tables" bson:"tables"`
}

// Table returns the table with the given name and true, or a zero Table
// and false if the catalog has no such table.
func (c Catalog) Table(name string) (Table, bool) {
	for _, t := range c.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// Validate checks that every table and column carries a usable name.
// Duplicate table names are NOT an error here - the graph builder recovers
// from them locally and records a diagnostic, per the engine's error model.
func (c Catalog) Validate() error {
	for i, t := range c.Tables {
		if err := errors.ValidateTableName(t.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidCatalog, err, "table %d", i)
		}
		for j, col := range t.Columns {
			if err := errors.ValidateColumnName(col.Name); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidCatalog, err, "table %s column %d", t.Name, j)
			}
		}
	}
	return nil
}
