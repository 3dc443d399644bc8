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
	"encoding/binary"
	"math/big"

	"github.com/cespare/xxhash/v2"
)

// Equal returns whether p and q have identical canonical forms. Comparing
// polynomials of different contexts panics.
func (p *Polynomial) Equal(q *Polynomial) bool {
	assertSameContext(p, q)
	if len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.terms {
		if cmpPowers(p.terms[i].powers, q.terms[i].powers) != 0 {
			return false
		}
		if p.terms[i].coeff.Cmp(q.terms[i].coeff) != 0 {
			return false
		}
	}
	return true
}

// EqualInt returns whether p is the constant n.
func (p *Polynomial) EqualInt(n *big.Int) bool {
	if !p.IsConstant() {
		return false
	}
	return p.ConstantPart().Cmp(n) == 0
}

// Cmp compares p and q, returning -1, 0 or +1 like big.Int.Cmp.
//
// Polynomials are ordered by their coefficient sequences, indexed by power
// product in descending canonical order: at the greatest power product
// where the coefficients of p and q differ, the larger coefficient decides.
// A missing monomial has coefficient 0. For constants this is integer
// comparison.
func (p *Polynomial) Cmp(q *Polynomial) int {
	assertSameContext(p, q)
	a, b := p.terms, q.terms
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b):
			return a[i].coeff.Sign()
		case i == len(a):
			return -b[j].coeff.Sign()
		}
		switch cmpPowers(a[i].powers, b[j].powers) {
		case 1:
			return a[i].coeff.Sign()
		case -1:
			return -b[j].coeff.Sign()
		}
		if c := a[i].coeff.Cmp(b[j].coeff); c != 0 {
			return c
		}
		i++
		j++
	}
	return 0
}

// CmpInt compares p with the constant n in p's context.
func (p *Polynomial) CmpInt(n *big.Int) int {
	return p.Cmp(NewConst(p.Context(), n))
}

// Less returns whether p < q.
func (p *Polynomial) Less(q *Polynomial) bool { return p.Cmp(q) < 0 }

// LessEq returns whether p <= q.
func (p *Polynomial) LessEq(q *Polynomial) bool { return p.Cmp(q) <= 0 }

// Greater returns whether p > q.
func (p *Polynomial) Greater(q *Polynomial) bool { return p.Cmp(q) > 0 }

// GreaterEq returns whether p >= q.
func (p *Polynomial) GreaterEq(q *Polynomial) bool { return p.Cmp(q) >= 0 }

// LessInt returns whether p < n.
func (p *Polynomial) LessInt(n *big.Int) bool { return p.CmpInt(n) < 0 }

// LessEqInt returns whether p <= n.
func (p *Polynomial) LessEqInt(n *big.Int) bool { return p.CmpInt(n) <= 0 }

// GreaterInt returns whether p > n.
func (p *Polynomial) GreaterInt(n *big.Int) bool { return p.CmpInt(n) > 0 }

// GreaterEqInt returns whether p >= n.
func (p *Polynomial) GreaterEqInt(n *big.Int) bool { return p.CmpInt(n) >= 0 }

// Hash returns a digest of the canonical form. Equal polynomials have equal
// hashes.
func (p *Polynomial) Hash() uint64 {
	p.check()
	h := xxhash.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], p.ctx.Hash())
	h.Write(buf[:])
	for _, m := range p.terms {
		binary.BigEndian.PutUint32(buf[:4], uint32(len(m.powers)))
		h.Write(buf[:4])
		for _, pw := range m.powers {
			binary.BigEndian.PutUint32(buf[:4], uint32(p.ctx.vars[pw.Index]))
			h.Write(buf[:4])
			binary.BigEndian.PutUint64(buf[:], uint64(pw.Exp))
			h.Write(buf[:])
		}
		if m.coeff.Sign() < 0 {
			h.Write([]byte{'-'})
		} else {
			h.Write([]byte{'+'})
		}
		mag := m.coeff.Bytes()
		binary.BigEndian.PutUint32(buf[:4], uint32(len(mag)))
		h.Write(buf[:4])
		h.Write(mag)
	}
	return h.Sum64()
}
