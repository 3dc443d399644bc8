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

// Package storetest provides a test suite shared by Store implementations.
package storetest

import (
	"github.com/pkg/errors"
	gc "gopkg.in/check.v1"

	"ctxpoly"
	"ctxpoly/store"
)

type Cleanup func()

type Factory func() (store.Store, Cleanup, error)

// StoreSuite exercises a Store created by Factory.
type StoreSuite struct {
	Factory Factory

	x, y, z ctxpoly.Variable
	ctx     *ctxpoly.Context
}

func NewStoreSuite(factory Factory) *StoreSuite {
	return &StoreSuite{
		Factory: factory,
	}
}

func (s *StoreSuite) SetUpSuite(c *gc.C) {
	s.x = ctxpoly.VariableNamed("storetest_x")
	s.y = ctxpoly.VariableNamed("storetest_y")
	s.z = ctxpoly.VariableNamed("storetest_z")
	s.ctx = ctxpoly.MustContext(s.x, s.y)
}

func (s *StoreSuite) open(c *gc.C) (store.Store, Cleanup) {
	st, cleanup, err := s.Factory()
	c.Assert(err, gc.IsNil)
	return st, cleanup
}

// sample returns 3*x^2*y - y + 4.
func (s *StoreSuite) sample() *ctxpoly.Polynomial {
	return ctxpoly.NewPolynomial(s.ctx,
		ctxpoly.Term{Coeff: ctxpoly.Zi(3), Powers: []ctxpoly.VarPower{{Var: s.x, Exp: 2}, {Var: s.y, Exp: 1}}},
		ctxpoly.Term{Coeff: ctxpoly.Zi(-1), Powers: []ctxpoly.VarPower{{Var: s.y, Exp: 1}}},
		ctxpoly.Term{Coeff: ctxpoly.Zi(4)},
	)
}

func (s *StoreSuite) TestPutGet(c *gc.C) {
	st, cleanup := s.open(c)
	defer cleanup()

	p := s.sample()
	key, err := st.Put(p)
	c.Assert(err, gc.IsNil)
	ok, err := st.Has(key)
	c.Assert(err, gc.IsNil)
	c.Assert(ok, gc.Equals, true)

	q, err := st.Get(key, s.ctx)
	c.Assert(err, gc.IsNil)
	c.Assert(q.Equal(p), gc.Equals, true)
	c.Assert(q.String(), gc.Equals, "3*storetest_x^2*storetest_y - storetest_y + 4")
}

func (s *StoreSuite) TestPutIdempotent(c *gc.C) {
	st, cleanup := s.open(c)
	defer cleanup()

	k1, err := st.Put(s.sample())
	c.Assert(err, gc.IsNil)
	k2, err := st.Put(s.sample())
	c.Assert(err, gc.IsNil)
	c.Assert(k1, gc.Equals, k2)

	k3, err := st.Put(ctxpoly.NewZero(s.ctx))
	c.Assert(err, gc.IsNil)
	c.Assert(k3 == k1, gc.Equals, false)

	keys, err := st.Keys()
	c.Assert(err, gc.IsNil)
	c.Assert(keys, gc.HasLen, 2)
	c.Assert(keys[0] < keys[1], gc.Equals, true)
}

func (s *StoreSuite) TestGetStoredContext(c *gc.C) {
	st, cleanup := s.open(c)
	defer cleanup()

	key, err := st.Put(s.sample())
	c.Assert(err, gc.IsNil)
	q, err := st.Get(key, nil)
	c.Assert(err, gc.IsNil)
	c.Assert(q.Context().Equal(s.ctx), gc.Equals, true)
	c.Assert(q.Equal(s.sample()), gc.Equals, true)
}

func (s *StoreSuite) TestGetOtherContext(c *gc.C) {
	st, cleanup := s.open(c)
	defer cleanup()

	key, err := st.Put(s.sample())
	c.Assert(err, gc.IsNil)

	zyx := ctxpoly.MustContext(s.z, s.y, s.x)
	q, err := st.Get(key, zyx)
	c.Assert(err, gc.IsNil)
	want, err := s.sample().WithContext(zyx)
	c.Assert(err, gc.IsNil)
	c.Assert(q.Equal(want), gc.Equals, true)

	_, err = st.Get(key, ctxpoly.MustContext(s.x, s.z))
	c.Assert(errors.Is(err, ctxpoly.ErrVariableNotInContext), gc.Equals, true)
}

func (s *StoreSuite) TestNotFound(c *gc.C) {
	st, cleanup := s.open(c)
	defer cleanup()

	key, err := st.Put(s.sample())
	c.Assert(err, gc.IsNil)
	c.Assert(st.Delete(key), gc.IsNil)

	ok, err := st.Has(key)
	c.Assert(err, gc.IsNil)
	c.Assert(ok, gc.Equals, false)
	_, err = st.Get(key, s.ctx)
	c.Assert(errors.Is(err, store.ErrNotFound), gc.Equals, true)
	c.Assert(errors.Is(st.Delete(key), store.ErrNotFound), gc.Equals, true)

	keys, err := st.Keys()
	c.Assert(err, gc.IsNil)
	c.Assert(keys, gc.HasLen, 0)
}
