// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors and the invariant violation panic value.

package revenue

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNoTrains indicates a calculation without any train.
	ErrNoTrains = errors.New("revenue: no trains")

	// ErrNoStartVertices indicates that no start vertex is reachable from the company HQ.
	ErrNoStartVertices = errors.New("revenue: no start vertices")

	// ErrCanceled indicates that the context ended before the search finished.
	// No partial result is reported.
	ErrCanceled = errors.New("revenue: calculation canceled")

	// ErrInconsistentResult indicates that the revenue recomputed from the
	// optimal run differs from the value the search reported.
	ErrInconsistentResult = errors.New("revenue: inconsistent result")

	// ErrUnknownVertex indicates an adapter operation on a vertex not in its graph.
	ErrUnknownVertex = errors.New("revenue: unknown vertex")
)

// InvariantError is the panic value raised when the search state becomes
// inconsistent: an edge travelled twice or released without being travelled,
// a vertex left out of order, or state left behind after the search.
// These are defects, never expected runtime conditions.
type InvariantError struct {
	Op     string
	Detail string
}

// Error implements error.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("revenue: invariant violated in %s: %s", e.Op, e.Detail)
}

func invariant(op, format string, args ...interface{}) {
	panic(&InvariantError{Op: op, Detail: fmt.Sprintf(format, args...)})
}
