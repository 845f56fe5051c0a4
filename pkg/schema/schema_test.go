package schema

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tablemap/tablemap/pkg/errors"
)

func testCatalog() Catalog {
	return Catalog{
		Tables: []Table{
			{
				Name:     "customers",
				RowCount: 1204,
				Columns: []Column{
					{Name: "id", Type: "integer"},
					{Name: "name", Type: "text"},
				},
			},
			{
				Name: "orders",
				Columns: []Column{
					{Name: "id", Type: "integer"},
					{Name: "customer_id", Type: "integer"},
					{Name: "total", Type: "numeric"},
				},
			},
		},
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	c := testCatalog()

	data, err := MarshalCatalog(c)
	if err != nil {
		t.Fatalf("MarshalCatalog() error: %v", err)
	}

	got, err := ReadCatalog(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadCatalog() error: %v", err)
	}

	if diff := cmp.Diff(c, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCatalog_InvalidJSON(t *testing.T) {
	_, err := ReadCatalog(strings.NewReader("{not json"))
	if err == nil {
		t.Fatal("ReadCatalog() should fail on malformed JSON")
	}
}

func TestReadCatalog_RejectsEmptyTableName(t *testing.T) {
	_, err := ReadCatalog(strings.NewReader(`{"tables":[{"name":"","columns":[]}]}`))
	if err == nil {
		t.Fatal("ReadCatalog() should fail on empty table name")
	}
	if !errors.Is(err, errors.ErrCodeInvalidCatalog) {
		t.Errorf("error code = %q, want INVALID_CATALOG", errors.GetCode(err))
	}
}

func TestCatalogValidate_DuplicateNamesAllowed(t *testing.T) {
	// Duplicates are recovered by the graph builder, not rejected here.
	c := Catalog{Tables: []Table{
		{Name: "orders", Columns: []Column{{Name: "id"}}},
		{Name: "orders", Columns: []Column{{Name: "id"}}},
	}}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() unexpected error for duplicate names: %v", err)
	}
}

func TestTableColumnLookup(t *testing.T) {
	tbl := testCatalog().Tables[1]

	col, ok := tbl.Column("customer_id")
	if !ok {
		t.Fatal("Column(customer_id) not found")
	}
	if col.Type != "integer" {
		t.Errorf("Column type = %q, want integer", col.Type)
	}

	if _, ok := tbl.Column("CUSTOMER_ID"); ok {
		t.Error("Column() matching should be exact, not case-insensitive")
	}
}

func TestCatalogTableLookup(t *testing.T) {
	c := testCatalog()
	if _, ok := c.Table("orders"); !ok {
		t.Error("Table(orders) not found")
	}
	if _, ok := c.Table("missing"); ok {
		t.Error("Table(missing) should not be found")
	}
}

func TestWriteCatalogFile(t *testing.T) {
	path := t.TempDir() + "/catalog.json"
	if err := WriteCatalogFile(testCatalog(), path); err != nil {
		t.Fatalf("WriteCatalogFile() error: %v", err)
	}

	got, err := ReadCatalogFile(path)
	if err != nil {
		t.Fatalf("ReadCatalogFile() error: %v", err)
	}
	if len(got.Tables) != 2 {
		t.Errorf("read %d tables, want 2", len(got.Tables))
	}
}
