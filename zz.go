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

var one = big.NewInt(1)

// Zi returns a new integer initialized to n.
func Zi(n int64) *big.Int {
	return big.NewInt(n)
}

// Zs returns a new integer from base10 string s, or nil if s does not parse.
func Zs(s string) *big.Int {
	i, ok := big.NewInt(0).SetString(s, 10)
	if !ok {
		return nil
	}
	return i
}

// Numerator returns a copy of the numerator of r. exact is false when r was
// not an integer, in which case the fractional part has been dropped.
func Numerator(r *big.Rat) (n *big.Int, exact bool) {
	return big.NewInt(0).Set(r.Num()), r.IsInt()
}

// gcd returns the non-negative greatest common divisor of a and b.
// gcd(0, 0) is 0.
func gcd(a, b *big.Int) *big.Int {
	return big.NewInt(0).GCD(nil, nil, a, b)
}

// sign returns the sign of x as an integer: -1, 0 or +1.
func sign(x *big.Int) *big.Int {
	return big.NewInt(int64(x.Sign()))
}
