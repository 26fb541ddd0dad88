package lineage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Read decodes a lineage document from r.
func Read(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode lineage document: %w", err)
	}
	return doc, nil
}

// ReadFile decodes a lineage document from the JSON file at path.
func ReadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()
	return Read(f)
}
