// SPDX-License-Identifier: MIT
//
// File: track.go
// Role: track notation grammar ("s0-1", "1-s4", "s2-s5").

package scenario

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/railrev/builder"
)

type trackAST struct {
	A *endpointAST `parser:"@@ \"-\""`
	B *endpointAST `parser:"@@"`
}

type endpointAST struct {
	Side *int `parser:"  \"s\" @Int"`
	Stop *int `parser:"| @Int"`
}

var trackLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Side", Pattern: `s`},
	{Name: "Dash", Pattern: `-`},
	{Name: "whitespace", Pattern: `[ \t]+`},
})

var parseTrackAST = participle.MustBuild[trackAST](
	participle.Lexer(trackLexer),
)

// ParseTrack converts track notation into a builder track.
func ParseTrack(s string) (builder.Track, error) {
	ast, err := parseTrackAST.ParseString("", strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return builder.Track{}, errors.Wrapf(ErrBadTrack, "%q: %v", s, err)
	}
	a, err := ast.A.endpoint(s)
	if err != nil {
		return builder.Track{}, err
	}
	b, err := ast.B.endpoint(s)
	if err != nil {
		return builder.Track{}, err
	}
	if a == b {
		return builder.Track{}, errors.Wrapf(ErrBadTrack, "%q: both ends are %s", s, a)
	}

	return builder.Track{A: a, B: b}, nil
}

func (e *endpointAST) endpoint(src string) (builder.Endpoint, error) {
	if e.Side != nil {
		if *e.Side > 5 {
			return builder.Endpoint{}, errors.Wrapf(ErrBadTrack, "%q: side %d out of range", src, *e.Side)
		}
		return builder.SideEnd(*e.Side), nil
	}

	return builder.StopEnd(*e.Stop), nil
}
