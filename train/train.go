// SPDX-License-Identifier: MIT
//
// File: train.go
// Role: Train value, validation and sentinel errors.

package train

import (
	"github.com/pkg/errors"
)

// Unlimited is the stop count used for trains without a stop limit.
const Unlimited = 99

var (
	// ErrZeroCapacity indicates a train that can neither stop nor travel.
	ErrZeroCapacity = errors.New("train: zero capacity")

	// ErrTooShort indicates a train that cannot score the two stops a run needs.
	ErrTooShort = errors.New("train: fewer than two stops")

	// ErrNegative indicates a negative count or multiplier.
	ErrNegative = errors.New("train: negative count or multiplier")

	// ErrBadShorthand indicates a string the shorthand grammar rejects.
	ErrBadShorthand = errors.New("train: bad shorthand")
)

// Train is an immutable run-length specification.
type Train struct {
	// Name identifies the train type, e.g. "3+3"; bonuses refer to it.
	Name string

	// Majors and Minors are the stop budgets for major and minor stations.
	Majors int
	Minors int

	// IgnoreMinors makes the train pass through minor stations without scoring them.
	IgnoreMinors bool

	// MajorMultiplier and MinorMultiplier scale station values at scored stops.
	MajorMultiplier int
	MinorMultiplier int

	// Hexes is the H-train distance budget; 0 for trains limited by stops.
	Hexes int
}

// New returns a plain train with unit multipliers.
func New(name string, majors, minors int) Train {
	return Train{
		Name:            name,
		Majors:          majors,
		Minors:          minors,
		MajorMultiplier: 1,
		MinorMultiplier: 1,
	}
}

// IsHTrain reports whether the train is limited by distance.
func (t Train) IsHTrain() bool { return t.Hexes > 0 }

// IsExpress reports whether the train ignores minor stations.
func (t Train) IsExpress() bool { return t.IgnoreMinors }

// MaxDistance is the number of hex boundaries an H-train may cross: a route
// touching n hexes crosses n-1 boundaries.
func (t Train) MaxDistance() int {
	if t.Hexes == 0 {
		return 0
	}

	return t.Hexes - 1
}

// Validate rejects trains that can never run.
func (t Train) Validate() error {
	if t.Majors < 0 || t.Minors < 0 || t.Hexes < 0 || t.MajorMultiplier < 0 || t.MinorMultiplier < 0 {
		return errors.Wrapf(ErrNegative, "train %q", t.Name)
	}
	if t.Hexes == 0 && t.Majors+t.Minors == 0 {
		return errors.Wrapf(ErrZeroCapacity, "train %q", t.Name)
	}
	if t.MajorMultiplier == 0 && t.MinorMultiplier == 0 {
		return errors.Wrapf(ErrZeroCapacity, "train %q scores nothing", t.Name)
	}
	stops := t.Majors
	if !t.IgnoreMinors {
		stops += t.Minors
	}
	if t.Hexes == 0 && stops < 2 {
		return errors.Wrapf(ErrTooShort, "train %q", t.Name)
	}

	return nil
}

// String implements fmt.Stringer.
func (t Train) String() string { return t.Name }
