package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileSource reads a dataset from a JSON document on disk.
type FileSource struct {
	Path string
}

// Load decodes the file at Path.
func (f FileSource) Load(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read dataset file: %w", err)
	}
	return Decode(payload)
}

// Decode parses the JSON wire form of a dataset.
func Decode(payload []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(payload, &ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return &ds, nil
}
