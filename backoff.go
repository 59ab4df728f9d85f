package url2md

import "time"

// BackoffPolicy maps a retry attempt index to the delay slept before that
// attempt. Attempt 1 is the initial try and always gets zero delay.
// Implementations may randomize; tests inject deterministic policies.
type BackoffPolicy interface {
	Delay(attempt int) time.Duration
}
