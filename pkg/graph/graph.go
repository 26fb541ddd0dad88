package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Marshal converts a renderable graph to indented JSON bytes.
// Output is deterministic: field order is fixed by the struct definitions
// and all collections are emitted in layout order.
func Marshal(r Renderable) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(r, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a renderable graph as JSON to an io.Writer.
func Write(r Renderable, w io.Writer) error {
	return writeTo(r, w)
}

// WriteFile writes a renderable graph to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(r Renderable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(r, f)
}

// Read decodes a JSON renderable graph from an io.Reader.
func Read(rd io.Reader) (Renderable, error) {
	var r Renderable
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return Renderable{}, fmt.Errorf("decode: %w", err)
	}
	return r, nil
}

// ReadFile reads a JSON file and returns the decoded renderable graph.
func ReadFile(path string) (Renderable, error) {
	f, err := os.Open(path)
	if err != nil {
		return Renderable{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

func writeTo(r Renderable, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
