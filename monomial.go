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
	"sort"
)

// Power is a variable, given by its position in a Context, raised to a
// positive exponent.
type Power struct {
	Index int
	Exp   uint
}

// Monomial is an integer coefficient times a product of variable powers.
// Powers are sorted by strictly increasing Index; an empty product is a
// constant term.
//
// A Monomial is never modified once it belongs to a polynomial, so
// polynomials may share them.
type Monomial struct {
	coeff  *big.Int
	powers []Power
}

// Coeff returns the coefficient. It must not be modified.
func (m *Monomial) Coeff() *big.Int {
	return m.coeff
}

// Powers returns the power product. It must not be modified.
func (m *Monomial) Powers() []Power {
	return m.powers
}

// IsConstant returns whether the monomial has no variables.
func (m *Monomial) IsConstant() bool {
	return len(m.powers) == 0
}

// TotalDegree returns the sum of all exponents.
func (m *Monomial) TotalDegree() uint {
	return totalDegree(m.powers)
}

// Exp returns the exponent of the variable at position index, or 0.
func (m *Monomial) Exp(index int) uint {
	i := sort.Search(len(m.powers), func(i int) bool { return m.powers[i].Index >= index })
	if i < len(m.powers) && m.powers[i].Index == index {
		return m.powers[i].Exp
	}
	return 0
}

func (m *Monomial) copy() *Monomial {
	return &Monomial{
		coeff:  big.NewInt(0).Set(m.coeff),
		powers: append([]Power(nil), m.powers...),
	}
}

// withCoeff returns a monomial with the same power product and coefficient c.
func (m *Monomial) withCoeff(c *big.Int) *Monomial {
	return &Monomial{coeff: c, powers: m.powers}
}

func totalDegree(powers []Power) uint {
	var d uint
	for _, p := range powers {
		d += p.Exp
	}
	return d
}

// cmpPowers compares two power products in graded lexicographic order:
// higher total degree ranks first, and ties are broken on the exponents of
// the variables in context order, the first variable being most
// significant. It returns -1, 0 or +1 like big.Int.Cmp.
//
// The order is compatible with multiplication, and does not depend on
// variables which occur in neither product.
func cmpPowers(a, b []Power) int {
	da, db := totalDegree(a), totalDegree(b)
	if da != db {
		if da > db {
			return 1
		}
		return -1
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		switch {
		case a[i].Index < b[i].Index:
			return 1
		case a[i].Index > b[i].Index:
			return -1
		case a[i].Exp > b[i].Exp:
			return 1
		case a[i].Exp < b[i].Exp:
			return -1
		}
	}
	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	}
	return 0
}

// mulPowers returns the product of two power products.
func mulPowers(a, b []Power) []Power {
	result := make([]Power, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Index < b[j].Index:
			result = append(result, a[i])
			i++
		case a[i].Index > b[j].Index:
			result = append(result, b[j])
			j++
		default:
			result = append(result, Power{Index: a[i].Index, Exp: a[i].Exp + b[j].Exp})
			i++
			j++
		}
	}
	result = append(result, a[i:]...)
	return append(result, b[j:]...)
}

// sortTerms sorts monomials into descending canonical order.
func sortTerms(terms []*Monomial) {
	sort.SliceStable(terms, func(i, j int) bool {
		return cmpPowers(terms[i].powers, terms[j].powers) > 0
	})
}

// mergeTerms returns a + sign*b, both in descending canonical order. Equal
// power products are summed into one monomial and zero sums are dropped.
func mergeTerms(a, b []*Monomial, sign int) []*Monomial {
	result := make([]*Monomial, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch cmpPowers(a[i].powers, b[j].powers) {
		case 1:
			result = append(result, a[i])
			i++
		case -1:
			result = append(result, signed(b[j], sign))
			j++
		default:
			c := big.NewInt(0)
			if sign < 0 {
				c.Sub(a[i].coeff, b[j].coeff)
			} else {
				c.Add(a[i].coeff, b[j].coeff)
			}
			if c.Sign() != 0 {
				result = append(result, a[i].withCoeff(c))
			}
			i++
			j++
		}
	}
	result = append(result, a[i:]...)
	for ; j < len(b); j++ {
		result = append(result, signed(b[j], sign))
	}
	return result
}

func signed(m *Monomial, sign int) *Monomial {
	if sign < 0 {
		return m.withCoeff(big.NewInt(0).Neg(m.coeff))
	}
	return m
}

// mulTerms returns the product of two canonical monomial lists.
func mulTerms(a, b []*Monomial) []*Monomial {
	var result []*Monomial
	for _, ma := range a {
		// Multiplying by a single monomial keeps the row in canonical order.
		row := make([]*Monomial, len(b))
		for j, mb := range b {
			row[j] = &Monomial{
				coeff:  big.NewInt(0).Mul(ma.coeff, mb.coeff),
				powers: mulPowers(ma.powers, mb.powers),
			}
		}
		result = mergeTerms(result, row, 1)
	}
	return result
}

// combineTerms canonicalizes an unordered list of monomials: it sorts them
// and merges equal power products, dropping zero coefficients.
func combineTerms(terms []*Monomial) []*Monomial {
	sortTerms(terms)
	result := make([]*Monomial, 0, len(terms))
	for _, m := range terms {
		if n := len(result); n > 0 && cmpPowers(result[n-1].powers, m.powers) == 0 {
			result[n-1] = result[n-1].withCoeff(big.NewInt(0).Add(result[n-1].coeff, m.coeff))
			continue
		}
		result = append(result, m)
	}
	nonzero := result[:0]
	for _, m := range result {
		if m.coeff.Sign() != 0 {
			nonzero = append(nonzero, m)
		}
	}
	return nonzero
}
