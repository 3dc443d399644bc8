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

// Package ctxpoly provides sparse multivariate polynomials with integer
// coefficients, kept in a canonical form relative to a shared variable
// ordering, the Context.
package ctxpoly

import (
	"math/big"
	"sort"

	log "github.com/sirupsen/logrus"
)

// Polynomial represents a sparse multivariate polynomial with integer
// coefficients over a Context.
//
// A Polynomial is a mutable value; it must not be modified by more than one
// goroutine at a time.
type Polynomial struct {

	// ctx orders the variables of all monomials.
	ctx *Context

	// terms are the monomials in descending canonical order. No two share a
	// power product and none has a zero coefficient.
	terms []*Monomial

	// moved is set once the monomial storage has been handed to another
	// Polynomial by Move.
	moved bool
}

func (p *Polynomial) check() {
	if p.moved {
		contractf("use of moved polynomial")
	}
	if p.ctx == nil {
		contractf("polynomial has no context")
	}
}

// set replaces the polynomial's state, validating the canonical order.
func (p *Polynomial) set(ctx *Context, terms []*Monomial) {
	p.ctx = ctx
	p.terms = terms
	p.moved = false
	p.assertOrder()
}

// NewZero returns the zero polynomial for ctx.
func NewZero(ctx *Context) *Polynomial {
	if ctx == nil {
		contractf("nil context")
	}
	return &Polynomial{ctx: ctx}
}

// NewConst returns the constant polynomial c.
func NewConst(ctx *Context, c *big.Int) *Polynomial {
	p := NewZero(ctx)
	if c.Sign() != 0 {
		p.terms = []*Monomial{{coeff: big.NewInt(0).Set(c)}}
	}
	return p
}

// NewInt returns the constant polynomial n.
func NewInt(ctx *Context, n int64) *Polynomial {
	return NewConst(ctx, big.NewInt(n))
}

// NewRat returns the constant polynomial of the numerator of r. exact is
// false if r had to be truncated to its numerator.
func NewRat(ctx *Context, r *big.Rat) (p *Polynomial, exact bool) {
	num, exact := Numerator(r)
	if !exact {
		log.Debugf("rational %v truncated to numerator %v", r, num)
	}
	return NewConst(ctx, num), exact
}

// NewTerm returns the polynomial coeff*v^degree. Degree 0 yields the constant
// coeff.
func NewTerm(ctx *Context, v Variable, coeff *big.Int, degree uint) *Polynomial {
	p := NewZero(ctx)
	index := ctx.mustLookup(v)
	if coeff.Sign() == 0 {
		return p
	}
	p.terms = []*Monomial{univariate(big.NewInt(0).Set(coeff), index, degree)}
	return p
}

// NewVar returns the polynomial v.
func NewVar(ctx *Context, v Variable) *Polynomial {
	return NewTerm(ctx, v, one, 1)
}

func univariate(c *big.Int, index int, degree uint) *Monomial {
	m := &Monomial{coeff: c}
	if degree > 0 {
		m.powers = []Power{{Index: index, Exp: degree}}
	}
	return m
}

// NewDense returns the univariate polynomial in v with the given
// coefficients, highest degree first. Nil and zero coefficients are skipped.
//
// For example, NewDense(ctx, x, Zi(1), Zi(0), Zi(-1), Zi(5)) represents
// x^3 - x + 5.
func NewDense(ctx *Context, v Variable, coeffs ...*big.Int) *Polynomial {
	owned := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		if c != nil {
			owned[i] = big.NewInt(0).Set(c)
		}
	}
	return NewDenseOwned(ctx, v, owned)
}

// NewDenseOwned is like NewDense, but takes ownership of the integers in
// coeffs rather than copying them. The caller must not use them afterwards.
func NewDenseOwned(ctx *Context, v Variable, coeffs []*big.Int) *Polynomial {
	p := NewZero(ctx)
	index := ctx.mustLookup(v)
	degree := len(coeffs)
	for _, c := range coeffs {
		degree--
		if c == nil || c.Sign() == 0 {
			continue
		}
		p.terms = append(p.terms, univariate(c, index, uint(degree)))
	}
	p.assertOrder()
	return p
}

// NewSparse returns the univariate polynomial in v with coefficients given
// by degree.
func NewSparse(ctx *Context, v Variable, coeffs map[uint]*big.Int) *Polynomial {
	p := NewZero(ctx)
	index := ctx.mustLookup(v)
	degrees := make([]uint, 0, len(coeffs))
	for d, c := range coeffs {
		if c != nil && c.Sign() != 0 {
			degrees = append(degrees, d)
		}
	}
	sort.Slice(degrees, func(i, j int) bool { return degrees[i] > degrees[j] })
	for _, d := range degrees {
		p.terms = append(p.terms, univariate(big.NewInt(0).Set(coeffs[d]), index, d))
	}
	p.assertOrder()
	return p
}

// NewPolynomial returns the sum of the given terms. Terms may be in any
// order, repeat power products or repeat a variable within a term.
func NewPolynomial(ctx *Context, terms ...Term) *Polynomial {
	p := NewZero(ctx)
	monomials := make([]*Monomial, 0, len(terms))
	for _, t := range terms {
		if t.Coeff == nil || t.Coeff.Sign() == 0 {
			continue
		}
		exps := make(map[int]uint)
		for _, vp := range t.Powers {
			index := ctx.mustLookup(vp.Var)
			exps[index] += vp.Exp
		}
		m := &Monomial{coeff: big.NewInt(0).Set(t.Coeff)}
		for index, exp := range exps {
			if exp > 0 {
				m.powers = append(m.powers, Power{Index: index, Exp: exp})
			}
		}
		sort.Slice(m.powers, func(i, j int) bool { return m.powers[i].Index < m.powers[j].Index })
		monomials = append(monomials, m)
	}
	p.set(ctx, combineTerms(monomials))
	return p
}

// One returns the constant polynomial 1 in the same context.
func (p *Polynomial) One() *Polynomial {
	return NewInt(p.Context(), 1)
}

// Context returns the variable ordering of the polynomial.
func (p *Polynomial) Context() *Context {
	p.check()
	return p.ctx
}

// Len returns the number of monomials.
func (p *Polynomial) Len() int {
	p.check()
	return len(p.terms)
}

// Monomials returns the monomials in descending canonical order. Neither the
// slice nor the monomials may be modified.
func (p *Polynomial) Monomials() []*Monomial {
	p.check()
	return p.terms
}

// Copy returns a deep copy of the polynomial sharing the same context.
func (p *Polynomial) Copy() *Polynomial {
	p.check()
	q := &Polynomial{ctx: p.ctx, terms: make([]*Monomial, len(p.terms))}
	for i, m := range p.terms {
		q.terms[i] = m.copy()
	}
	return q
}

// Move transfers the monomials of p into a new Polynomial. Any further use
// of p panics, until it is assigned a new value by an arithmetic method.
func (p *Polynomial) Move() *Polynomial {
	p.check()
	q := &Polynomial{ctx: p.ctx, terms: p.terms}
	p.terms = nil
	p.moved = true
	return q
}

// Set sets p to a copy of x, returning p.
func (p *Polynomial) Set(x *Polynomial) *Polynomial {
	if p == x {
		return p
	}
	q := x.Copy()
	p.set(q.ctx, q.terms)
	return p
}

// IsZero returns whether the polynomial is zero.
func (p *Polynomial) IsZero() bool {
	p.check()
	return len(p.terms) == 0
}

// IsConstant returns whether no variable occurs in the polynomial.
func (p *Polynomial) IsConstant() bool {
	p.check()
	// The constant monomial ranks last, so it can only be alone.
	return len(p.terms) == 0 || (len(p.terms) == 1 && p.terms[0].IsConstant())
}

// IsNumber is a synonym for IsConstant.
func (p *Polynomial) IsNumber() bool {
	return p.IsConstant()
}

// IsOne returns whether the polynomial is the constant 1.
func (p *Polynomial) IsOne() bool {
	return p.IsConstant() && len(p.terms) == 1 && p.terms[0].coeff.Cmp(one) == 0
}

// IsLinear returns whether the total degree is at most 1.
func (p *Polynomial) IsLinear() bool {
	return p.TotalDegree() <= 1
}

// IsUnivariate returns whether exactly one variable occurs.
func (p *Polynomial) IsUnivariate() bool {
	return p.Variables().Len() == 1
}

// SingleVariable returns the only variable of a univariate polynomial.
func (p *Polynomial) SingleVariable() Variable {
	vars := p.Variables()
	if vars.Len() != 1 {
		contractf("%v is not univariate", p)
	}
	return vars.Items()[0]
}
