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
	"github.com/pkg/errors"
)

// level returns the 1-based context position of the main variable, 0 for
// constants.
func (p *Polynomial) level() int {
	ctx := p.Context()
	return Fold(p, 0, func(level int, t Term) int {
		for _, vp := range t.Powers {
			if i, _ := ctx.Lookup(vp.Var); i+1 > level {
				level = i + 1
			}
		}
		return level
	})
}

// MainVar returns the occurring variable which comes last in the context
// ordering, or NoVariable for a constant.
func (p *Polynomial) MainVar() Variable {
	level := p.level()
	if level == 0 {
		return NoVariable
	}
	return p.ctx.Variable(level - 1)
}

// Level returns the 1-based position of the main variable in the context,
// or 0 for a constant.
func (p *Polynomial) Level() int {
	return p.level()
}

// Degree returns the degree of p in its main variable. The degree of the
// zero polynomial is undefined and returns ErrDegreeOfZeroPolynomial.
func (p *Polynomial) Degree() (uint, error) {
	if p.IsZero() {
		return 0, errors.WithStack(ErrDegreeOfZeroPolynomial)
	}
	v := p.MainVar()
	if v == NoVariable {
		return 0, nil
	}
	return p.DegreeOf(v), nil
}

// Coeff returns the coefficient of mainVar^k, as a polynomial in the other
// variables. Coeff(0) collects the monomials without the main variable.
func (p *Polynomial) Coeff(k uint) *Polynomial {
	v := p.MainVar()
	if v == NoVariable {
		if k == 0 {
			return p.Copy()
		}
		return NewZero(p.ctx)
	}
	terms := Fold(p, []Term(nil), func(terms []Term, t Term) []Term {
		if t.Exp(v) != k {
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

// LCoeff returns the leading coefficient with respect to the main variable.
func (p *Polynomial) LCoeff() (*Polynomial, error) {
	d, err := p.Degree()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return p.Coeff(d), nil
}

// Coefficients returns the non-zero coefficients with respect to the main
// variable, by ascending degree. The zero polynomial has none.
func (p *Polynomial) Coefficients() []*Polynomial {
	d, err := p.Degree()
	if err != nil {
		return nil
	}
	var result []*Polynomial
	for k := uint(0); k <= d; k++ {
		if c := p.Coeff(k); !c.IsZero() {
			result = append(result, c)
		}
	}
	return result
}

// Truncate sets p to x minus its leading term in the main variable,
// LCoeff(x)*mainVar^Degree(x), returning p. The truncation of a constant is
// zero.
func (p *Polynomial) Truncate(x *Polynomial) *Polynomial {
	x.check()
	v := x.MainVar()
	if v == NoVariable {
		p.set(x.ctx, nil)
		return p
	}
	d := x.DegreeOf(v)
	lead := x.Coeff(d)
	lead.Mul(lead, NewTerm(x.ctx, v, one, d))
	return p.Sub(x, lead)
}
