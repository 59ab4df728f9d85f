package extract

import (
	"math/rand/v2"
	"time"

	"github.com/msaum/url2md"
)

// Ensure policies implement url2md.BackoffPolicy at compile time.
var (
	_ url2md.BackoffPolicy = (*RandomBackoff)(nil)
	_ url2md.BackoffPolicy = NoBackoff{}
)

// Defaults for RandomBackoff. The window starts at 1-3s and widens by 1s
// per attempt; roughly one retry in seven also takes a longer human-like
// pause of 2-6s.
const (
	DefaultBackoffMin  = 1 * time.Second
	DefaultBackoffMax  = 3 * time.Second
	DefaultBackoffStep = 1 * time.Second
	DefaultPauseChance = 0.15
	DefaultPauseMin    = 2 * time.Second
	DefaultPauseMax    = 6 * time.Second
)

// RandomBackoff draws each delay uniformly from a window that widens with
// the attempt count, plus an independent small probability of an extra
// human-like pause. The randomness avoids synchronized retry storms and the
// fixed-interval signature bot detectors look for.
type RandomBackoff struct {
	rand *rand.Rand

	min         time.Duration
	max         time.Duration
	step        time.Duration
	pauseChance float64
	pauseMin    time.Duration
	pauseMax    time.Duration
}

// BackoffOption configures a RandomBackoff.
type BackoffOption func(*RandomBackoff)

// WithBackoffRand sets the randomness source. Tests inject a seeded source.
func WithBackoffRand(r *rand.Rand) BackoffOption {
	return func(b *RandomBackoff) {
		b.rand = r
	}
}

// WithBackoffWindow sets the initial delay window and the amount it widens
// per additional attempt.
func WithBackoffWindow(min, max, step time.Duration) BackoffOption {
	return func(b *RandomBackoff) {
		b.min, b.max, b.step = min, max, step
	}
}

// WithHumanPause sets the probability and duration range of the extra pause.
func WithHumanPause(chance float64, min, max time.Duration) BackoffOption {
	return func(b *RandomBackoff) {
		b.pauseChance, b.pauseMin, b.pauseMax = chance, min, max
	}
}

// NewRandomBackoff creates a RandomBackoff with production defaults.
func NewRandomBackoff(opts ...BackoffOption) *RandomBackoff {
	b := &RandomBackoff{
		min:         DefaultBackoffMin,
		max:         DefaultBackoffMax,
		step:        DefaultBackoffStep,
		pauseChance: DefaultPauseChance,
		pauseMin:    DefaultPauseMin,
		pauseMax:    DefaultPauseMax,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rand == nil {
		b.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return b
}

// Delay returns the randomized delay before the given attempt.
// Attempt 1 is the initial try and gets zero delay.
func (b *RandomBackoff) Delay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}
	max := b.max + time.Duration(attempt-2)*b.step
	d := b.uniform(b.min, max)
	if b.rand.Float64() < b.pauseChance {
		d += b.uniform(b.pauseMin, b.pauseMax)
	}
	return d
}

func (b *RandomBackoff) uniform(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(b.rand.Int64N(int64(max-min)))
}

// NoBackoff returns zero delay for every attempt. Tests use it to run
// retry loops without wall-clock waits.
type NoBackoff struct{}

// Delay always returns zero.
func (NoBackoff) Delay(int) time.Duration {
	return 0
}
