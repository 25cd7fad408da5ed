// SPDX-License-Identifier: MIT
// Package: railrev/builder
//
// board.go — the board description consumed by BuildNetwork.

package builder

import (
	"fmt"

	"github.com/katalvlaran/railrev/core"
)

// Board is the set of hexes laid on the map.
type Board struct {
	Hexes []Hex
}

// Hex is one map hex with its stops and laid track.
type Hex struct {
	ID string

	// Neighbors holds the neighbouring hex ID per side 0..5; "" for the map border.
	Neighbors [6]string

	Stops  []Stop
	Tracks []Track
}

// Stop is a station slot of a hex.
type Stop struct {
	Slot        int
	Type        core.StationType
	Value       int
	PhaseValues map[string]int

	// Slots is the number of base-token spaces; Tokens the companies occupying them.
	Slots  int
	Tokens []string

	Label string
}

// Endpoint is one end of a track segment: a hex side or a stop slot.
type Endpoint struct {
	Side int // 0..5 when IsSide
	Stop int // stop slot when !IsSide

	IsSide bool
}

// SideEnd returns the endpoint for hex side side.
func SideEnd(side int) Endpoint { return Endpoint{Side: side, IsSide: true} }

// StopEnd returns the endpoint for stop slot slot.
func StopEnd(slot int) Endpoint { return Endpoint{Stop: slot} }

// String renders the endpoint in track notation ("s2" or "1").
func (e Endpoint) String() string {
	if e.IsSide {
		return fmt.Sprintf("s%d", e.Side)
	}

	return fmt.Sprintf("%d", e.Stop)
}

// Track is a track segment inside a hex.
type Track struct {
	A, B Endpoint
}

// String renders the track in notation "s0-1".
func (t Track) String() string { return t.A.String() + "-" + t.B.String() }

// hexIndex maps hex IDs to hexes, rejecting duplicates.
func (b Board) hexIndex() (map[string]*Hex, error) {
	idx := make(map[string]*Hex, len(b.Hexes))
	for i := range b.Hexes {
		h := &b.Hexes[i]
		if _, dup := idx[h.ID]; dup {
			return nil, builderErrorf(methodBuildNetwork, ErrDuplicateHex, "hex %q", h.ID)
		}
		idx[h.ID] = h
	}

	return idx, nil
}
