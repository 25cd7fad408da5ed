// SPDX-License-Identifier: MIT
// Package: railrev/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with builderErrorf, never baked into a sentinel.

package builder

import (
	"github.com/pkg/errors"
)

// ErrUnknownHex indicates a hex neighbour reference that is not on the board.
var ErrUnknownHex = errors.New("builder: unknown hex")

// ErrDuplicateHex indicates two hexes sharing an ID.
var ErrDuplicateHex = errors.New("builder: duplicate hex")

// ErrBadEndpoint indicates a track endpoint outside 0..5 or naming a missing stop.
var ErrBadEndpoint = errors.New("builder: bad track endpoint")

// ErrDuplicateStop indicates two stops with the same slot in one hex.
var ErrDuplicateStop = errors.New("builder: duplicate stop")

// ErrNoTokens indicates a company without any base token on the graph.
var ErrNoTokens = errors.New("builder: company has no tokens")

// builderErrorf attaches method context to a sentinel, keeping errors.Is working.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, method+": "+format, args...)
}

// Method names used as error context.
const (
	methodBuildNetwork = "BuildNetwork"
	methodSimplify     = "Simplify"
	methodCompanyGraph = "CompanyGraph"
	methodRouteGraph   = "RouteGraph"
)
