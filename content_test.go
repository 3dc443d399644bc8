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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	gc "gopkg.in/check.v1"
)

type ContentSuite struct {
	x, y Variable
	ctx  *Context
}

var _ = gc.Suite(&ContentSuite{})

func (s *ContentSuite) SetUpSuite(c *gc.C) {
	s.x, s.y = NewVariable("x"), NewVariable("y")
	s.ctx = MustContext(s.x, s.y)
}

// x2y returns a*x^2*y + b*x*y^2.
func (s *ContentSuite) x2y(a, b int64) *Polynomial {
	return NewPolynomial(s.ctx,
		Term{Coeff: Zi(a), Powers: []VarPower{{s.x, 2}, {s.y, 1}}},
		Term{Coeff: Zi(b), Powers: []VarPower{{s.x, 1}, {s.y, 2}}},
	)
}

func (s *ContentSuite) TestCoprime(c *gc.C) {
	p := s.x2y(6, -9)
	c.Assert(p.CoprimeFactor().Int64(), gc.Equals, int64(3))
	q := p.CoprimeCoefficients()
	c.Assert(q.String(), gc.Equals, "2*x^2*y - 3*x*y^2")
	c.Assert(q.UnitPart().Int64(), gc.Equals, int64(1))
	c.Assert(q.Normalized().Equal(q), gc.Equals, true)
	c.Assert(p.String(), gc.Equals, "6*x^2*y - 9*x*y^2")
}

func (s *ContentSuite) TestNormalizeNegative(c *gc.C) {
	p := s.x2y(-4, 10)
	c.Assert(p.UnitPart().Int64(), gc.Equals, int64(-1))
	c.Assert(p.IsNormal(), gc.Equals, false)
	n := p.Normalized()
	c.Assert(n.String(), gc.Equals, "2*x^2*y - 5*x*y^2")
	c.Assert(n.IsNormal(), gc.Equals, true)
}

func (s *ContentSuite) TestCoprimeAlready(c *gc.C) {
	p := s.x2y(2, 3)
	c.Assert(p.CoprimeFactor().Int64(), gc.Equals, int64(1))
	q := p.CoprimeCoefficients()
	c.Assert(q.Equal(p), gc.Equals, true)
	c.Assert(q == p, gc.Equals, false)
}

func (s *ContentSuite) TestZero(c *gc.C) {
	zero := NewZero(s.ctx)
	c.Assert(zero.CoprimeFactor().Sign(), gc.Equals, 0)
	c.Assert(zero.CoprimeCoefficients().IsZero(), gc.Equals, true)
	c.Assert(zero.UnitPart().Int64(), gc.Equals, int64(1))
	c.Assert(zero.IsNormal(), gc.Equals, true)
	c.Assert(zero.Normalized().IsZero(), gc.Equals, true)
}

func (s *ContentSuite) TestConstant(c *gc.C) {
	k := NewInt(s.ctx, -12)
	c.Assert(k.CoprimeFactor().Int64(), gc.Equals, int64(12))
	c.Assert(k.Normalized().IsOne(), gc.Equals, true)
}

func (s *ContentSuite) TestNormalizeMetric(c *gc.C) {
	before := testutil.ToFloat64(metrics.normalize)
	s.x2y(1, 1).Normalized()
	c.Assert(testutil.ToFloat64(metrics.normalize)-before, gc.Equals, float64(1))
}

func (s *ContentSuite) TestRegisterMetrics(c *gc.C) {
	reg := prometheus.NewRegistry()
	RegisterMetrics(reg)
	RegisterMetrics(reg)
	n, err := testutil.GatherAndCount(reg)
	c.Assert(err, gc.IsNil)
	c.Assert(n, gc.Equals, 4)
}
