package metadata

import (
	"encoding/json"
	"io"
	"os"

	"github.com/thorn-jmh/errorst"
)

// FromJSONFile reads from a JSON file and returns a Source.
func FromJSONFile(filePath string) (*Source, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errorst.NewError("failed to open file %s: %v", filePath, err)
	}

	defer func() {
		_ = f.Close()
	}()

	return FromJSON(f)
}

// FromJSON reads from a JSON reader and returns a Source.
func FromJSON(r io.Reader) (*Source, error) {
	var src Source
	if err := json.NewDecoder(r).Decode(&src); err != nil {
		return nil, errorst.NewError("failed to unmarshal JSON: %v", err)
	}

	return &src, nil
}
