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
	"sync/atomic"
)

var checkOrder atomic.Bool

func init() {
	checkOrder.Store(true)
}

// assertOrder panics if the monomials are not canonical for the context,
// when order checking is enabled.
func (p *Polynomial) assertOrder() {
	if !checkOrder.Load() {
		return
	}
	if err := p.validate(); err != "" {
		contractf("invalid polynomial over %v: %s", p.ctx, err)
	}
}

// validate returns a description of the first broken invariant, or "".
func (p *Polynomial) validate() string {
	for i, m := range p.terms {
		if m.coeff == nil || m.coeff.Sign() == 0 {
			return "zero coefficient"
		}
		last := -1
		for _, pw := range m.powers {
			if pw.Index <= last || pw.Index >= p.ctx.Len() {
				return "power product not ordered by context"
			}
			if pw.Exp == 0 {
				return "zero exponent"
			}
			last = pw.Index
		}
		if i > 0 && cmpPowers(p.terms[i-1].powers, m.powers) <= 0 {
			return "monomials out of order"
		}
	}
	return ""
}
