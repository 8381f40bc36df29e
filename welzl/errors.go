// SPDX-License-Identifier: MIT
// Package welzl: error set.
//
// The resolver has exactly one failure class: the input does not hold enough
// points for the requested support size. It is reported as *InsufficientError,
// which unwraps to the ErrInsufficient sentinel so callers can branch with
// either errors.Is(err, ErrInsufficient) or errors.As(err, &insufficient).
// Degenerate geometry (collinear or coincident points) is NOT an error; see
// geom.FromThreePoints for the fallback policy.

package welzl

import (
	"errors"
	"fmt"
)

// ErrInsufficient indicates that fewer points were supplied than the target
// support size k requires.
var ErrInsufficient = errors.New("welzl: insufficient points")

// InsufficientError carries the numbers behind ErrInsufficient.
type InsufficientError struct {
	// Require is the number of points the query needs.
	Require int
	// Points is the number of points that were available.
	Points int
}

// Error implements error.
func (e *InsufficientError) Error() string {
	return fmt.Sprintf("%s: require %d, have %d", ErrInsufficient.Error(), e.Require, e.Points)
}

// Unwrap exposes ErrInsufficient to errors.Is.
func (e *InsufficientError) Unwrap() error { return ErrInsufficient }

func insufficient(require, points int) error {
	return &InsufficientError{Require: require, Points: points}
}
