package batch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/idelchi/vigsig/internal/config"
)

// LoadRequests reads a JSONC file and returns the requests it holds.
func LoadRequests(path string) ([]config.Request, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied arguments
	if err != nil {
		return nil, fmt.Errorf("reading requests file %q: %w", path, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSONInPlace(data)))
	decoder.DisallowUnknownFields()

	var requests []config.Request
	if err := decoder.Decode(&requests); err != nil {
		return nil, fmt.Errorf("parsing requests file %q: %w", path, err)
	}

	return requests, nil
}
