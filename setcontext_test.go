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
	"github.com/prometheus/client_golang/prometheus/testutil"
	gc "gopkg.in/check.v1"
)

type SetContextSuite struct {
	x, y, z Variable
}

var _ = gc.Suite(&SetContextSuite{})

func (s *SetContextSuite) SetUpSuite(c *gc.C) {
	s.x, s.y, s.z = NewVariable("x"), NewVariable("y"), NewVariable("z")
}

// sample returns x^2 + x*z + y^2 + z over ctx.
func (s *SetContextSuite) sample(ctx *Context) *Polynomial {
	return NewPolynomial(ctx,
		Term{Coeff: Zi(1), Powers: []VarPower{{s.x, 2}}},
		Term{Coeff: Zi(1), Powers: []VarPower{{s.x, 1}, {s.z, 1}}},
		Term{Coeff: Zi(1), Powers: []VarPower{{s.y, 2}}},
		Term{Coeff: Zi(1), Powers: []VarPower{{s.z, 1}}},
	)
}

func (s *SetContextSuite) TestRelabel(c *gc.C) {
	xz := MustContext(s.x, s.z)
	xyz := MustContext(s.x, s.y, s.z)
	p := NewPolynomial(xz,
		Term{Coeff: Zi(2), Powers: []VarPower{{s.x, 1}, {s.z, 1}}},
		Term{Coeff: Zi(-1), Powers: []VarPower{{s.z, 2}}},
		Term{Coeff: Zi(3)},
	)
	orig := p.Copy()

	relabels := testutil.ToFloat64(metrics.contextRelabel)
	reorders := testutil.ToFloat64(metrics.contextReorder)
	c.Assert(p.SetContext(xyz), gc.IsNil)
	c.Assert(p.Context(), gc.Equals, xyz)
	c.Assert(p.Monomials()[0].Powers(), gc.DeepEquals, []Power{{Index: 0, Exp: 1}, {Index: 2, Exp: 1}})
	c.Assert(p.validate(), gc.Equals, "")

	c.Assert(p.SetContext(xz), gc.IsNil)
	c.Assert(p.Equal(orig), gc.Equals, true)
	c.Assert(testutil.ToFloat64(metrics.contextRelabel)-relabels, gc.Equals, float64(2))
	c.Assert(testutil.ToFloat64(metrics.contextReorder)-reorders, gc.Equals, float64(0))
}

func (s *SetContextSuite) TestReorder(c *gc.C) {
	xyz := MustContext(s.x, s.y, s.z)
	zyx := MustContext(s.z, s.y, s.x)
	p := s.sample(xyz)
	c.Assert(p.String(), gc.Equals, "x^2 + x*z + y^2 + z")

	reorders := testutil.ToFloat64(metrics.contextReorder)
	c.Assert(p.SetContext(zyx), gc.IsNil)
	c.Assert(testutil.ToFloat64(metrics.contextReorder)-reorders, gc.Equals, float64(1))
	c.Assert(p.validate(), gc.Equals, "")
	c.Assert(p.Equal(s.sample(zyx)), gc.Equals, true)
	c.Assert(p.String(), gc.Equals, "z*x + y^2 + x^2 + z")

	c.Assert(p.SetContext(xyz), gc.IsNil)
	c.Assert(p.Equal(s.sample(xyz)), gc.Equals, true)
}

func (s *SetContextSuite) TestSameContext(c *gc.C) {
	xyz := MustContext(s.x, s.y, s.z)
	p := s.sample(xyz)
	relabels := testutil.ToFloat64(metrics.contextRelabel)
	c.Assert(p.SetContext(MustContext(s.x, s.y, s.z)), gc.IsNil)
	c.Assert(testutil.ToFloat64(metrics.contextRelabel), gc.Equals, relabels)
}

func (s *SetContextSuite) TestMissingVariable(c *gc.C) {
	xyz := MustContext(s.x, s.y, s.z)
	xy := MustContext(s.x, s.y)
	p := s.sample(xyz)
	err := p.SetContext(xy)
	c.Assert(errors.Is(err, ErrVariableNotInContext), gc.Equals, true)
	c.Assert(err, gc.ErrorMatches, `variable "z" not in \[x, y\]: variable not in context`)
	c.Assert(p.Context(), gc.Equals, xyz)
	c.Assert(p.Equal(s.sample(xyz)), gc.Equals, true)

	// Dropping a variable which does not occur is fine.
	q := NewDense(xyz, s.y, Zi(1), Zi(1))
	c.Assert(q.SetContext(xy), gc.IsNil)
	c.Assert(q.String(), gc.Equals, "y + 1")
}

func (s *SetContextSuite) TestWithContext(c *gc.C) {
	xyz := MustContext(s.x, s.y, s.z)
	yzx := MustContext(s.y, s.z, s.x)
	p := s.sample(xyz)
	q, err := p.WithContext(yzx)
	c.Assert(err, gc.IsNil)
	c.Assert(q.Context(), gc.Equals, yzx)
	c.Assert(p.Context(), gc.Equals, xyz)

	_, err = p.WithContext(MustContext(s.y))
	c.Assert(errors.Is(err, ErrVariableNotInContext), gc.Equals, true)
}
