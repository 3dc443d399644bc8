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
	"bytes"
	"fmt"
	"math/big"
)

// String represents a polynomial in a readable form, leading monomial
// first, such as "2*x^2*y - 3*x*y^2 + 1".
func (p *Polynomial) String() string {
	if p.moved {
		return "<moved>"
	}
	if len(p.terms) == 0 {
		return "0"
	}
	result := bytes.NewBuffer(nil)
	for i, m := range p.terms {
		switch {
		case i == 0 && m.coeff.Sign() < 0:
			fmt.Fprintf(result, "-")
		case i > 0 && m.coeff.Sign() < 0:
			fmt.Fprintf(result, " - ")
		case i > 0:
			fmt.Fprintf(result, " + ")
		}
		abs := big.NewInt(0).Abs(m.coeff)
		if m.IsConstant() {
			fmt.Fprintf(result, "%v", abs)
			continue
		}
		if abs.Cmp(one) != 0 {
			fmt.Fprintf(result, "%v*", abs)
		}
		for j, pw := range m.powers {
			if j > 0 {
				fmt.Fprintf(result, "*")
			}
			fmt.Fprintf(result, "%v", p.ctx.vars[pw.Index])
			if pw.Exp > 1 {
				fmt.Fprintf(result, "^%d", pw.Exp)
			}
		}
	}
	return result.String()
}
