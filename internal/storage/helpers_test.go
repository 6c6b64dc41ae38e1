package storage

import (
	"math/rand/v2"
	"time"
)

type fakeClock struct{ t time.Time }

func newFakeClock(start time.Time) *fakeClock { return &fakeClock{t: start} }
func (f *fakeClock) Now() time.Time           { return f.t }
func (f *fakeClock) Advance(d time.Duration)  { f.t = f.t.Add(d) }

// newTestDatabase returns a database with a fixed clock and a fixed-seed random source
func newTestDatabase() (*Database, *fakeClock) {
	fc := newFakeClock(time.Unix(1_700_000_000, 0))
	db := NewDatabase(&Options{
		Clock: fc,
		Rand:  rand.New(rand.NewPCG(1, 2)),
	})
	return db, fc
}
