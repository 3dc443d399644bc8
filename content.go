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

// CoprimeFactor returns the non-negative gcd of all coefficients, the
// content of p. The content of the zero polynomial is 0.
func (p *Polynomial) CoprimeFactor() *big.Int {
	return Fold(p, big.NewInt(0), func(g *big.Int, t Term) *big.Int {
		return gcd(g, t.Coeff)
	})
}

// CoprimeCoefficients returns p divided by its content, so that the
// coefficients are coprime. The zero polynomial is returned as a copy.
func (p *Polynomial) CoprimeCoefficients() *Polynomial {
	g := p.CoprimeFactor()
	if g.Sign() == 0 || g.Cmp(one) == 0 {
		return p.Copy()
	}
	terms := make([]*Monomial, len(p.terms))
	for i, m := range p.terms {
		q, r := big.NewInt(0).QuoRem(m.coeff, g, big.NewInt(0))
		if r.Sign() != 0 {
			contractf("content %v does not divide coefficient %v", g, m.coeff)
		}
		terms[i] = &Monomial{coeff: q, powers: append([]Power(nil), m.powers...)}
	}
	q := &Polynomial{}
	q.set(p.ctx, terms)
	return q
}

// UnitPart returns the sign of the leading coefficient, or 1 for the zero
// polynomial. Integer coefficients do not form a field, so the sign is the
// only unit to divide out.
func (p *Polynomial) UnitPart() *big.Int {
	p.check()
	if len(p.terms) == 0 {
		return big.NewInt(1)
	}
	return sign(p.terms[0].coeff)
}

// IsNormal returns whether the unit part is 1.
func (p *Polynomial) IsNormal() bool {
	return p.UnitPart().Cmp(one) == 0
}

// Normalized returns p with coprime coefficients and a positive leading
// coefficient.
func (p *Polynomial) Normalized() *Polynomial {
	metrics.normalize.Inc()
	res := p.CoprimeCoefficients()
	return res.MulInt(res, res.UnitPart())
}
