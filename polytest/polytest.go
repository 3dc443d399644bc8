/*
   ctxpoly - Multivariate integer polynomials over shared variable orderings

   Copyright (c) 2012-2015  Casey Marshall <cmars@cmarstech.com>

   This program is free software: you can redistribute it and/or modify
   it under the terms of the GNU Affero General Public License as published by
   the Free Software Foundation, version 3.

   This program is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
   GNU Affero General Public License for more details.

   You should have received a copy of the GNU Affero General Public License
   along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package polytest generates random polynomials for property tests.
package polytest

import (
	"math/big"

	"github.com/jmcvetta/randutil"
	"github.com/pkg/errors"

	"ctxpoly"
)

// Options bounds the shape of generated polynomials.
type Options struct {
	MaxTerms  int
	MaxDegree int
	MaxCoeff  int
}

// DefaultOptions are small enough to keep products of a few polynomials
// cheap.
var DefaultOptions = Options{
	MaxTerms:  6,
	MaxDegree: 4,
	MaxCoeff:  50,
}

var names = []string{"x", "y", "z", "u", "v", "w"}

// Variables registers n new variables with random display names.
func Variables(n int) ([]ctxpoly.Variable, error) {
	vars := make([]ctxpoly.Variable, n)
	for i := range vars {
		prefix, err := randutil.ChoiceString(names)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		suffix, err := randutil.AlphaString(3)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		vars[i] = ctxpoly.NewVariable(prefix + "_" + suffix)
	}
	return vars, nil
}

// Shuffle returns a random permutation of vars.
func Shuffle(vars []ctxpoly.Variable) ([]ctxpoly.Variable, error) {
	result := append([]ctxpoly.Variable(nil), vars...)
	for i := len(result) - 1; i > 0; i-- {
		j, err := randutil.IntRange(0, i+1)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		result[i], result[j] = result[j], result[i]
	}
	return result, nil
}

// Context returns a Context over a random ordering of vars.
func Context(vars []ctxpoly.Variable) (*ctxpoly.Context, error) {
	ordering, err := Shuffle(vars)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return ctxpoly.NewContext(ordering...)
}

// Poly returns a random polynomial over the variables of ctx. It may be
// zero.
func Poly(ctx *ctxpoly.Context, opts Options) (*ctxpoly.Polynomial, error) {
	nterms, err := randutil.IntRange(0, opts.MaxTerms+1)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	vars := ctx.Variables()
	terms := make([]ctxpoly.Term, 0, nterms)
	for i := 0; i < nterms; i++ {
		coeff, err := randutil.IntRange(-opts.MaxCoeff, opts.MaxCoeff+1)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		t := ctxpoly.Term{Coeff: big.NewInt(int64(coeff))}
		for _, v := range vars {
			exp, err := randutil.IntRange(0, opts.MaxDegree+1)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			if exp > 0 {
				t.Powers = append(t.Powers, ctxpoly.VarPower{Var: v, Exp: uint(exp)})
			}
		}
		terms = append(terms, t)
	}
	return ctxpoly.NewPolynomial(ctx, terms...), nil
}

// NonZero is like Poly, but never returns the zero polynomial.
func NonZero(ctx *ctxpoly.Context, opts Options) (*ctxpoly.Polynomial, error) {
	for {
		p, err := Poly(ctx, opts)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if !p.IsZero() {
			return p, nil
		}
	}
}

// MustVariables is like Variables but panics on error.
func MustVariables(n int) []ctxpoly.Variable {
	vars, err := Variables(n)
	if err != nil {
		panic(err)
	}
	return vars
}

// MustContext is like Context but panics on error.
func MustContext(vars []ctxpoly.Variable) *ctxpoly.Context {
	ctx, err := Context(vars)
	if err != nil {
		panic(err)
	}
	return ctx
}

// MustPoly is like Poly but panics on error.
func MustPoly(ctx *ctxpoly.Context, opts Options) *ctxpoly.Polynomial {
	p, err := Poly(ctx, opts)
	if err != nil {
		panic(err)
	}
	return p
}

// MustNonZero is like NonZero but panics on error.
func MustNonZero(ctx *ctxpoly.Context, opts Options) *ctxpoly.Polynomial {
	p, err := NonZero(ctx, opts)
	if err != nil {
		panic(err)
	}
	return p
}
