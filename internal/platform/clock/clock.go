// Package clock abstracts time for components with expiry logic, so the
// 24-hour keyword cache window and 30-day selection cookie can be tested
// deterministically.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// System is a Clock backed by the system clock.
type System struct{}

// Now returns the current system time.
func (System) Now() time.Time { return time.Now() }

// Fake is a Clock pinned to a settable instant.
type Fake struct {
	current time.Time
}

// NewFake creates a fake clock starting at t.
func NewFake(t time.Time) *Fake {
	return &Fake{current: t}
}

// Now returns the pinned instant.
func (f *Fake) Now() time.Time { return f.current }

// Advance moves the pinned instant forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}

// Set pins the clock to t.
func (f *Fake) Set(t time.Time) {
	f.current = t
}
