// Package identity generates randomized browser-like header sets to reduce
// the chance of fingerprinting-based blocking.
package identity

import (
	"math/rand/v2"
	"net/http"

	"github.com/msaum/url2md"
)

// Ensure Pool implements url2md.IdentityPool at compile time.
var _ url2md.IdentityPool = (*Pool)(nil)

// defaultUserAgents is a fixed pool of modern desktop browser signatures.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:122.0) Gecko/20100101 Firefox/122.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2.1 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36 Edg/121.0.0.0",
}

// defaultReferers is a small pool of well-known referrers.
var defaultReferers = []string{
	"https://www.google.com/",
	"https://www.bing.com/",
	"https://duckduckgo.com/",
}

// DefaultRefererChance is the probability that a generated identity carries
// a Referer header.
const DefaultRefererChance = 0.5

// Pool generates browser-like header bundles with a randomized User-Agent
// and an optionally randomized Referer. It holds no state beyond its
// randomness source; every call to Next is an independent sample.
type Pool struct {
	rand          *rand.Rand
	userAgents    []string
	referers      []string
	refererChance float64
}

// Option configures a Pool.
type Option func(*Pool)

// WithRand sets the randomness source. Tests inject a seeded source for
// deterministic output.
func WithRand(r *rand.Rand) Option {
	return func(p *Pool) {
		p.rand = r
	}
}

// WithUserAgents replaces the default User-Agent pool.
func WithUserAgents(uas []string) Option {
	return func(p *Pool) {
		p.userAgents = uas
	}
}

// WithReferers replaces the default Referer pool.
func WithReferers(refs []string) Option {
	return func(p *Pool) {
		p.referers = refs
	}
}

// WithRefererChance sets the probability of including a Referer header.
// 0 disables the header; 1 always includes it.
func WithRefererChance(chance float64) Option {
	return func(p *Pool) {
		p.refererChance = chance
	}
}

// NewPool creates a Pool with the default User-Agent and Referer pools.
func NewPool(opts ...Option) *Pool {
	p := &Pool{
		userAgents:    defaultUserAgents,
		referers:      defaultReferers,
		refererChance: DefaultRefererChance,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rand == nil {
		p.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return p
}

// Next returns a fresh browser-like header set.
// Accept-Encoding is deliberately omitted: net/http negotiates gzip itself
// and decompresses transparently only when the header is not set manually.
func (p *Pool) Next() http.Header {
	h := http.Header{}
	h.Set("User-Agent", p.userAgents[p.rand.IntN(len(p.userAgents))])
	h.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7")
	h.Set("Accept-Language", "en-US,en;q=0.9")
	h.Set("Connection", "keep-alive")
	h.Set("Upgrade-Insecure-Requests", "1")
	h.Set("Sec-Fetch-Dest", "document")
	h.Set("Sec-Fetch-Mode", "navigate")
	h.Set("Sec-Fetch-Site", "none")
	h.Set("Sec-Fetch-User", "?1")
	h.Set("Cache-Control", "max-age=0")
	if len(p.referers) > 0 && p.rand.Float64() < p.refererChance {
		h.Set("Referer", p.referers[p.rand.IntN(len(p.referers))])
	}
	return h
}
