package domain

import "time"

// LockDuration is the fixed period a deposit is held in escrow before it can
// be withdrawn.
const LockDuration = 90 * 24 * time.Hour

var lockDurationSeconds = int64(LockDuration / time.Second)

// IsMatured returns whether a deposit made at depositTime (unix seconds) can be
// withdrawn at time now.
func IsMatured(depositTime int64, now time.Time) bool {
	return now.Unix()-depositTime >= lockDurationSeconds
}

// MaturityTime returns the unix time starting from which a deposit made at
// depositTime is withdrawable.
func MaturityTime(depositTime int64) int64 {
	return depositTime + lockDurationSeconds
}
