package mock

import (
	"context"

	"github.com/fwojciec/sitescan"
)

var (
	_ sitescan.ArtifactStore = (*ArtifactStore)(nil)
	_ sitescan.DomainLimiter = (*DomainLimiter)(nil)
)

// ArtifactStore is a mock implementation of sitescan.ArtifactStore.
type ArtifactStore struct {
	SaveScreenshotFn func(ctx context.Context, n int, png []byte) (string, error)
}

func (s *ArtifactStore) SaveScreenshot(ctx context.Context, n int, png []byte) (string, error) {
	return s.SaveScreenshotFn(ctx, n, png)
}

// DomainLimiter is a mock implementation of sitescan.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
