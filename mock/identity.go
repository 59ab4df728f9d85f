package mock

import (
	"net/http"
	"time"

	"github.com/msaum/url2md"
)

var _ url2md.IdentityPool = (*IdentityPool)(nil)

// IdentityPool is a mock implementation of url2md.IdentityPool.
type IdentityPool struct {
	NextFn func() http.Header
}

func (p *IdentityPool) Next() http.Header {
	return p.NextFn()
}

var _ url2md.BackoffPolicy = (*BackoffPolicy)(nil)

// BackoffPolicy is a mock implementation of url2md.BackoffPolicy.
type BackoffPolicy struct {
	DelayFn func(attempt int) time.Duration
}

func (b *BackoffPolicy) Delay(attempt int) time.Duration {
	return b.DelayFn(attempt)
}
