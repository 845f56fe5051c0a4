package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Catalog Serialization API
// =============================================================================

// MarshalCatalog converts a Catalog to pretty-printed JSON bytes.
func MarshalCatalog(c Catalog) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeCatalogTo(c, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCatalogFile writes a Catalog to a JSON file.
// The file is created with 0644 permissions.
func WriteCatalogFile(c Catalog, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeCatalogTo(c, f)
}

// WriteCatalog writes a Catalog as JSON to an io.Writer.
func WriteCatalog(c Catalog, w io.Writer) error {
	return writeCatalogTo(c, w)
}

// ReadCatalogFile reads a JSON file and returns the decoded Catalog.
// The catalog is validated before being returned.
func ReadCatalogFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readCatalogFrom(f)
}

// ReadCatalog decodes a JSON catalog from an io.Reader.
// Use ReadCatalogFile for files or pass bytes.NewReader for in-memory data.
func ReadCatalog(r io.Reader) (Catalog, error) {
	return readCatalogFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeCatalogTo(c Catalog, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readCatalogFrom(r io.Reader) (Catalog, error) {
	var c Catalog
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return Catalog{}, fmt.Errorf("decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}
