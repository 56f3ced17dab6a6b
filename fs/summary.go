package fs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fwojciec/sitescan"
)

// WriteSummary writes s as indented JSON to path, replacing any existing
// file atomically.
func WriteSummary(path string, s *sitescan.SiteSummary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	data = append(data, '\n')
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// ReadSummary reads a summary previously written by WriteSummary.
// Returns ENOTFOUND if path does not exist and EINVALID if it is not a
// summary.
func ReadSummary(path string) (*sitescan.SiteSummary, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, sitescan.Errorf(sitescan.ENOTFOUND, "summary %q not found", path)
	} else if err != nil {
		return nil, err
	}

	var s sitescan.SiteSummary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, sitescan.Errorf(sitescan.EINVALID, "invalid summary %q: %v", path, err)
	}
	return &s, nil
}
