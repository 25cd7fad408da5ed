// SPDX-License-Identifier: MIT
//
// File: parse.go
// Role: shorthand grammar ("2", "3+3", "4E", "6D", "D", "5H").

package train

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

type shorthand struct {
	Majors *int   `parser:"@Int?"`
	Minors *int   `parser:"( \"+\" @Int )?"`
	Kind   string `parser:"@Kind?"`
}

var shorthandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Plus", Pattern: `\+`},
	{Name: "Kind", Pattern: `[A-Za-z]+`},
	{Name: "whitespace", Pattern: `[ \t]+`},
})

var parseShorthand = participle.MustBuild[shorthand](
	participle.Lexer(shorthandLexer),
)

// Parse converts a shorthand string into a validated Train named after it.
func Parse(s string) (Train, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "" {
		return Train{}, errors.Wrap(ErrBadShorthand, "empty")
	}
	ast, err := parseShorthand.ParseString("", name)
	if err != nil {
		return Train{}, errors.Wrapf(ErrBadShorthand, "%q: %v", s, err)
	}

	t, err := ast.train(name)
	if err != nil {
		return Train{}, err
	}
	if err = t.Validate(); err != nil {
		return Train{}, err
	}

	return t, nil
}

// MustParse is like Parse but panics on error. Intended for tests and fixed rosters.
func MustParse(s string) Train {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return t
}

func (a *shorthand) train(name string) (Train, error) {
	if a.Majors == nil && a.Minors != nil {
		return Train{}, errors.Wrapf(ErrBadShorthand, "%q: minor count without majors", name)
	}

	n := 0
	if a.Majors != nil {
		n = *a.Majors
	}
	t := New(name, n, 0)
	if a.Minors != nil {
		t.Minors = *a.Minors
	}

	switch a.Kind {
	case "":
		if a.Majors == nil {
			return Train{}, errors.Wrapf(ErrBadShorthand, "%q: no stop count", name)
		}
	case "E":
		if a.Majors == nil {
			return Train{}, errors.Wrapf(ErrBadShorthand, "%q: express without stop count", name)
		}
		t.IgnoreMinors = true
		t.MinorMultiplier = 0
	case "D":
		if a.Majors == nil {
			// diesel
			t.Majors, t.Minors = Unlimited, Unlimited
			break
		}
		t.IgnoreMinors = true
		t.MajorMultiplier = 2
		t.MinorMultiplier = 0
	case "H":
		if a.Majors == nil || a.Minors != nil {
			return Train{}, errors.Wrapf(ErrBadShorthand, "%q: H-trains take a single hex count", name)
		}
		t.Hexes = n
		t.Majors, t.Minors = Unlimited, Unlimited
	default:
		return Train{}, errors.Wrapf(ErrBadShorthand, "%q: unknown suffix %q", name, a.Kind)
	}

	return t, nil
}
