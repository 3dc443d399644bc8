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
	"math"
	"math/bits"
	"sort"

	gc "gopkg.in/check.v1"
)

type CompareSuite struct {
	x, y Variable
	ctx  *Context
}

var _ = gc.Suite(&CompareSuite{})

func (s *CompareSuite) SetUpSuite(c *gc.C) {
	s.x, s.y = NewVariable("x"), NewVariable("y")
	s.ctx = MustContext(s.x, s.y)
}

func (s *CompareSuite) TestEqualInt(c *gc.C) {
	five := NewInt(s.ctx, 5)
	c.Assert(five.EqualInt(Zi(5)), gc.Equals, true)
	c.Assert(five.EqualInt(Zi(4)), gc.Equals, false)
	c.Assert(NewZero(s.ctx).EqualInt(Zi(0)), gc.Equals, true)

	p := NewDense(s.ctx, s.x, Zi(1), Zi(5))
	for _, n := range []int64{0, 1, 5, -5} {
		c.Assert(p.EqualInt(Zi(n)), gc.Equals, false)
	}
}

func (s *CompareSuite) TestEqual(c *gc.C) {
	a := NewDense(s.ctx, s.x, Zi(1), Zi(5))
	b := NewZero(s.ctx).AddInt(NewVar(s.ctx, s.x), Zi(5))
	c.Assert(a.Equal(a), gc.Equals, true)
	c.Assert(a.Equal(b), gc.Equals, true)
	c.Assert(a.Hash(), gc.Equals, b.Hash())
	c.Assert(a.Cmp(b), gc.Equals, 0)

	d := NewDense(s.ctx, s.x, Zi(1), Zi(6))
	c.Assert(a.Equal(d), gc.Equals, false)
	c.Assert(a.Hash() == d.Hash(), gc.Equals, false)

	neg := NewDense(s.ctx, s.x, Zi(1), Zi(-5))
	c.Assert(a.Hash() == neg.Hash(), gc.Equals, false)
}

func (s *CompareSuite) TestHashDependsOnContext(c *gc.C) {
	other := MustContext(s.x)
	a := NewVar(s.ctx, s.x)
	b := NewVar(other, s.x)
	c.Assert(a.Hash() == b.Hash(), gc.Equals, false)
	c.Assert(NewZero(s.ctx).Hash(), gc.Equals, NewZero(s.ctx).Hash())
}

func (s *CompareSuite) TestCmpInt(c *gc.C) {
	three := NewInt(s.ctx, 3)
	c.Assert(three.CmpInt(Zi(3)), gc.Equals, 0)
	c.Assert(three.LessInt(Zi(4)), gc.Equals, true)
	c.Assert(three.LessEqInt(Zi(3)), gc.Equals, true)
	c.Assert(three.GreaterInt(Zi(-10)), gc.Equals, true)
	c.Assert(three.GreaterEqInt(Zi(4)), gc.Equals, false)
	c.Assert(NewZero(s.ctx).CmpInt(Zi(-1)), gc.Equals, 1)

	x := NewVar(s.ctx, s.x)
	c.Assert(x.GreaterInt(Zi(1000)), gc.Equals, true)
	c.Assert(NewZero(s.ctx).Neg(x).LessInt(Zi(-1000)), gc.Equals, true)
}

func (s *CompareSuite) TestCmpTotalOrder(c *gc.C) {
	x := NewVar(s.ctx, s.x)
	y := NewVar(s.ctx, s.y)
	one := NewInt(s.ctx, 1)
	values := []*Polynomial{
		NewZero(s.ctx).Add(x, one),
		NewZero(s.ctx).Neg(y),
		NewZero(s.ctx).Mul(x, x),
		one,
		NewZero(s.ctx),
		x,
		y,
		NewZero(s.ctx).Sub(x, y),
	}
	sort.Slice(values, func(i, j int) bool { return values[i].Less(values[j]) })
	var got []string
	for _, v := range values {
		got = append(got, v.String())
	}
	c.Assert(got, gc.DeepEquals, []string{"-y", "0", "1", "y", "x - y", "x", "x + 1", "x^2"})

	for i := range values {
		for j := range values {
			c.Assert(values[i].Cmp(values[j]), gc.Equals, -values[j].Cmp(values[i]))
		}
	}
	c.Assert(x.LessEq(x), gc.Equals, true)
	c.Assert(x.GreaterEq(y), gc.Equals, true)
	c.Assert(x.Greater(x), gc.Equals, false)
}

func (s *CompareSuite) TestCmpMismatched(c *gc.C) {
	other := MustContext(s.y, s.x)
	c.Assert(func() { NewVar(s.ctx, s.x).Cmp(NewVar(other, s.x)) }, gc.PanicMatches, "ctxpoly: expected context.*")
}

func (s *CompareSuite) TestHashWideExponent(c *gc.C) {
	if bits.UintSize < 64 {
		c.Skip("exponents above 32 bits need a 64-bit uint")
	}
	wide := uint(math.MaxUint32)
	wide += 2
	a := NewTerm(s.ctx, s.x, Zi(1), wide)
	b := NewTerm(s.ctx, s.x, Zi(1), 1)
	c.Assert(a.Equal(b), gc.Equals, false)
	c.Assert(a.Hash() == b.Hash(), gc.Equals, false)
	c.Assert(a.Hash(), gc.Equals, a.Copy().Hash())
}
