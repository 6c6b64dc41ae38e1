package engine

import (
	"time"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestEngine() (*Engine, *Registry, *fakeClock) {
	fc := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	reg := NewRegistry(&Options{Seed: 42, Clock: fc})
	return New(reg), reg, fc
}
