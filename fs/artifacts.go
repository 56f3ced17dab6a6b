package fs

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/sitescan"
)

// Ensure ArtifactStore implements sitescan.ArtifactStore at compile time.
var _ sitescan.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore writes screenshots into a directory as page_<n>.png.
type ArtifactStore struct {
	dir string
}

// NewArtifactStore creates an ArtifactStore rooted at dir. The directory is
// created on first write.
func NewArtifactStore(dir string) *ArtifactStore {
	return &ArtifactStore{dir: dir}
}

// SaveScreenshot writes png as page_<n>.png and returns its path.
func (s *ArtifactStore) SaveScreenshot(ctx context.Context, n int, png []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if n < 1 {
		return "", sitescan.Errorf(sitescan.EINVALID, "screenshot index must be at least 1, got %d", n)
	}
	if len(png) == 0 {
		return "", sitescan.Errorf(sitescan.EINVALID, "empty screenshot")
	}

	path := filepath.Join(s.dir, fmt.Sprintf("page_%d.png", n))
	if err := writeFileAtomic(path, png); err != nil {
		return "", fmt.Errorf("writing screenshot: %w", err)
	}
	return path, nil
}
