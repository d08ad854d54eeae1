// Package clock abstracts "now" so that date-dependent projections (payoff
// dates, paid-this-month checks, the current-month runway) can be tested
// against fixed dates.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// Real returns the system time.
type Real struct{}

// Now returns time.Now().
func (Real) Now() time.Time { return time.Now() }

// Fixed always returns T.
type Fixed struct {
	T time.Time
}

// Now returns the fixed time.
func (c Fixed) Now() time.Time { return c.T }

// Func adapts a function to Clock.
type Func func() time.Time

// Now calls f.
func (f Func) Now() time.Time { return f() }

// NewReal returns a Clock backed by the system time. Only cmd/ should need it.
func NewReal() Clock { return Real{} }

// NewFixed returns a Clock frozen at t.
func NewFixed(t time.Time) Clock { return Fixed{T: t} }

var (
	_ Clock = Real{}
	_ Clock = Fixed{}
	_ Clock = Func(nil)
)
