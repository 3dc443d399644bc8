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

package ctxpoly

import (
	"math/big"
)

// VarPower is a variable raised to an exponent.
type VarPower struct {
	Var Variable
	Exp uint
}

// Term is a monomial as seen by traversal: a coefficient and the
// powers of its variables, in context order.
type Term struct {
	Coeff  *big.Int
	Powers []VarPower
}

// TotalDegree returns the sum of the exponents of the term.
func (t Term) TotalDegree() uint {
	var d uint
	for _, vp := range t.Powers {
		d += vp.Exp
	}
	return d
}

// Exp returns the exponent of v in the term, or 0 if v does not occur.
func (t Term) Exp(v Variable) uint {
	for _, vp := range t.Powers {
		if vp.Var == v {
			return vp.Exp
		}
	}
	return 0
}

// Iterator visits the monomials of a polynomial in descending canonical
// order. The polynomial must not be modified during iteration.
type Iterator struct {
	p    *Polynomial
	pos  int
	term Term
}

// Iter returns an iterator positioned before the first monomial.
func (p *Polynomial) Iter() *Iterator {
	p.check()
	return &Iterator{p: p, pos: -1}
}

// Next advances to the next monomial, returning false once there are none.
func (it *Iterator) Next() bool {
	if it.pos < len(it.p.terms) {
		it.pos++
	}
	if it.pos >= len(it.p.terms) {
		return false
	}
	m := it.p.terms[it.pos]
	it.term = Term{Coeff: m.coeff, Powers: make([]VarPower, len(m.powers))}
	for i, pw := range m.powers {
		it.term.Powers[i] = VarPower{Var: it.p.ctx.vars[pw.Index], Exp: pw.Exp}
	}
	return true
}

// Term returns the current monomial. Its coefficient must not be modified.
func (it *Iterator) Term() Term {
	return it.term
}

// Reset rewinds the iterator to before the first monomial.
func (it *Iterator) Reset() {
	it.pos = -1
	it.term = Term{}
}

// Each calls fn on every monomial of p, stopping early if fn returns false.
func Each(p *Polynomial, fn func(Term) bool) {
	it := p.Iter()
	for it.Next() {
		if !fn(it.Term()) {
			return
		}
	}
}

// Fold reduces the monomials of p into an accumulator.
func Fold[A any](p *Polynomial, init A, fn func(A, Term) A) A {
	acc := init
	Each(p, func(t Term) bool {
		acc = fn(acc, t)
		return true
	})
	return acc
}

// Terms returns a copy of all monomials of p as terms.
func (p *Polynomial) Terms() []Term {
	return Fold(p, []Term(nil), func(terms []Term, t Term) []Term {
		return append(terms, Term{Coeff: big.NewInt(0).Set(t.Coeff), Powers: t.Powers})
	})
}

// TotalDegree returns the largest total degree of any monomial, 0 for the
// zero polynomial.
func (p *Polynomial) TotalDegree() uint {
	return Fold(p, uint(0), func(d uint, t Term) uint {
		if td := t.TotalDegree(); td > d {
			return td
		}
		return d
	})
}

// DegreeOf returns the largest exponent of v in any monomial, 0 if v does
// not occur.
func (p *Polynomial) DegreeOf(v Variable) uint {
	return Fold(p, uint(0), func(d uint, t Term) uint {
		if e := t.Exp(v); e > d {
			return e
		}
		return d
	})
}

// MonomialTotalDegrees returns the total degree of each monomial, in
// traversal order.
func (p *Polynomial) MonomialTotalDegrees() []uint {
	return Fold(p, []uint(nil), func(ds []uint, t Term) []uint {
		return append(ds, t.TotalDegree())
	})
}

// MonomialDegrees returns the exponent of v in each monomial, in traversal
// order.
func (p *Polynomial) MonomialDegrees(v Variable) []uint {
	return Fold(p, []uint(nil), func(ds []uint, t Term) []uint {
		return append(ds, t.Exp(v))
	})
}

// DegreeAllVariables returns the largest exponent of any single variable in
// any monomial.
func (p *Polynomial) DegreeAllVariables() uint {
	return Fold(p, uint(0), func(d uint, t Term) uint {
		for _, vp := range t.Powers {
			if vp.Exp > d {
				d = vp.Exp
			}
		}
		return d
	})
}

// ConstantPart returns the sum of the coefficients of all constant
// monomials.
func (p *Polynomial) ConstantPart() *big.Int {
	return Fold(p, big.NewInt(0), func(sum *big.Int, t Term) *big.Int {
		if len(t.Powers) == 0 {
			sum.Add(sum, t.Coeff)
		}
		return sum
	})
}

// Has returns whether v occurs in p. Variables unknown to the context do
// not occur.
func (p *Polynomial) Has(v Variable) bool {
	if !p.Context().Has(v) {
		return false
	}
	return Fold(p, false, func(found bool, t Term) bool {
		return found || t.Exp(v) > 0
	})
}

// CoeffOf returns the polynomial of all monomials containing exactly v^exp,
// with that power removed. Other monomials are dropped, so CoeffOf(v, 0) is
// zero.
func (p *Polynomial) CoeffOf(v Variable, exp uint) *Polynomial {
	terms := Fold(p, []Term(nil), func(terms []Term, t Term) []Term {
		if exp == 0 || t.Exp(v) != exp {
			return terms
		}
		stripped := Term{Coeff: t.Coeff}
		for _, vp := range t.Powers {
			if vp.Var != v {
				stripped.Powers = append(stripped.Powers, vp)
			}
		}
		return append(terms, stripped)
	})
	return NewPolynomial(p.ctx, terms...)
}

// Variables returns the set of variables occurring in p, in order of first
// occurrence.
func (p *Polynomial) Variables() *VariableSet {
	vars := NewVariableSet()
	CollectVariables(p, vars)
	return vars
}

// CollectVariables adds the variables occurring in p to vars.
func CollectVariables(p *Polynomial, vars *VariableSet) {
	Fold(p, vars, func(vars *VariableSet, t Term) *VariableSet {
		for _, vp := range t.Powers {
			vars.Add(vp.Var)
		}
		return vars
	})
}
