package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/amirSA5/tiny-home-guide/internal/catalog"
)

// LoadCatalogFromFile reads a catalog snapshot from a JSON file. The file
// uses the same shape (and camelCase keys) as the API payloads. The snapshot
// is validated; an empty or malformed catalog is a startup error.
func LoadCatalogFromFile(path string) (*catalog.Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var c catalog.Catalog
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return catalog.New(c)
}
