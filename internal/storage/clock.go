package storage

import "time"

// Clock is the time source used for expiration checks
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
