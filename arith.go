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

// assertSameContext asserts all polynomials share an equal context.
func assertSameContext(x *Polynomial, values ...*Polynomial) {
	x.check()
	for _, v := range values {
		v.check()
		if !x.ctx.Equal(v.ctx) {
			contractf("expected context %v, was %v", x.ctx, v.ctx)
		}
	}
}

// Add sets p to the sum x+y, returning p. x and y must have equal contexts.
func (p *Polynomial) Add(x, y *Polynomial) *Polynomial {
	assertSameContext(x, y)
	p.set(x.ctx, mergeTerms(x.terms, y.terms, 1))
	return p
}

// Sub sets p to the difference x-y, returning p.
func (p *Polynomial) Sub(x, y *Polynomial) *Polynomial {
	assertSameContext(x, y)
	p.set(x.ctx, mergeTerms(x.terms, y.terms, -1))
	return p
}

// Mul sets p to the product x*y, returning p.
func (p *Polynomial) Mul(x, y *Polynomial) *Polynomial {
	assertSameContext(x, y)
	p.set(x.ctx, mulTerms(x.terms, y.terms))
	return p
}

// Neg sets p to -x, returning p.
func (p *Polynomial) Neg(x *Polynomial) *Polynomial {
	x.check()
	terms := make([]*Monomial, len(x.terms))
	for i, m := range x.terms {
		terms[i] = signed(m, -1)
	}
	p.set(x.ctx, terms)
	return p
}

// AddInt sets p to x+n, returning p.
func (p *Polynomial) AddInt(x *Polynomial, n *big.Int) *Polynomial {
	return p.Add(x, NewConst(x.Context(), n))
}

// SubInt sets p to x-n, returning p.
func (p *Polynomial) SubInt(x *Polynomial, n *big.Int) *Polynomial {
	return p.Sub(x, NewConst(x.Context(), n))
}

// IntSub sets p to n-x, returning p.
func (p *Polynomial) IntSub(n *big.Int, x *Polynomial) *Polynomial {
	return p.Sub(NewConst(x.Context(), n), x)
}

// MulInt sets p to n*x, returning p.
func (p *Polynomial) MulInt(x *Polynomial, n *big.Int) *Polynomial {
	return p.Mul(x, NewConst(x.Context(), n))
}

// Pow sets p to x^k, returning p. x^0 is 1, including for zero x.
func (p *Polynomial) Pow(x *Polynomial, k uint) *Polynomial {
	result := x.One()
	base := x.Copy()
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			result.Mul(result, base)
		}
		if k > 1 {
			base.Mul(base, base)
		}
	}
	p.set(result.ctx, result.terms)
	return p
}

// Mod sets p to x with every coefficient replaced by its non-negative
// remainder modulo m, returning p. m must be positive.
func (p *Polynomial) Mod(x *Polynomial, m *big.Int) *Polynomial {
	x.check()
	if m.Sign() <= 0 {
		contractf("modulus %v is not positive", m)
	}
	terms := make([]*Monomial, 0, len(x.terms))
	for _, t := range x.terms {
		c := big.NewInt(0).Mod(t.coeff, m)
		if c.Sign() != 0 {
			terms = append(terms, t.withCoeff(c))
		}
	}
	p.set(x.ctx, terms)
	return p
}
