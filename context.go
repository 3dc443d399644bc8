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
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Context is an immutable total order over a finite set of variables.
// Polynomials are kept canonical relative to their Context, and may only be
// combined with polynomials of an equal Context.
//
// Contexts are safe to share between goroutines.
type Context struct {
	vars  []Variable
	index map[Variable]int

	// key is the big-endian encoding of vars, hash its xxhash digest.
	key  string
	hash uint64
}

// NewContext returns the Context ordering the given variables, first to
// last. Identical orderings are interned, so that they usually share a
// single *Context.
func NewContext(vars ...Variable) (*Context, error) {
	c := &Context{
		vars:  make([]Variable, len(vars)),
		index: make(map[Variable]int, len(vars)),
	}
	key := make([]byte, 4*len(vars))
	for i, v := range vars {
		if v == NoVariable {
			return nil, errors.WithStack(ErrNoVariable)
		}
		if _, ok := c.index[v]; ok {
			return nil, errors.Wrapf(ErrDuplicateVariable, "variable %q", v.Name())
		}
		c.vars[i] = v
		c.index[v] = i
		binary.BigEndian.PutUint32(key[4*i:], uint32(v))
	}
	c.key = string(key)
	c.hash = xxhash.Sum64(key)
	return interned.intern(c), nil
}

// MustContext is like NewContext but panics on error.
func MustContext(vars ...Variable) *Context {
	c, err := NewContext(vars...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the position of v in the ordering. ok is false if v is not
// tracked by this Context.
func (c *Context) Lookup(v Variable) (index int, ok bool) {
	index, ok = c.index[v]
	return
}

func (c *Context) mustLookup(v Variable) int {
	i, ok := c.index[v]
	if !ok {
		contractf("variable %q not in context %v", v.Name(), c)
	}
	return i
}

// Has returns whether v is tracked by this Context.
func (c *Context) Has(v Variable) bool {
	_, ok := c.index[v]
	return ok
}

// Len returns the number of variables in the ordering.
func (c *Context) Len() int {
	return len(c.vars)
}

// Variable returns the variable at position i.
func (c *Context) Variable(i int) Variable {
	return c.vars[i]
}

// Variables returns a copy of the ordering.
func (c *Context) Variables() []Variable {
	return append([]Variable(nil), c.vars...)
}

// Hash returns a digest of the ordering. Equal contexts have equal hashes.
func (c *Context) Hash() uint64 {
	return c.hash
}

// Equal returns whether both contexts order the same variables the same way.
func (c *Context) Equal(other *Context) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.hash == other.hash && c.key == other.key
}

// IsExtensionOf returns whether every variable of other is also in c, in
// the same relative order.
func (c *Context) IsExtensionOf(other *Context) bool {
	last := -1
	for _, v := range other.vars {
		i, ok := c.index[v]
		if !ok || i <= last {
			return false
		}
		last = i
	}
	return true
}

// Extend returns a Context which appends the given variables, skipping any
// already ordered, to this one. The result is an extension of c.
func (c *Context) Extend(vars ...Variable) (*Context, error) {
	ordering := c.Variables()
	seen := make(map[Variable]bool)
	for _, v := range vars {
		if c.Has(v) || seen[v] {
			continue
		}
		seen[v] = true
		ordering = append(ordering, v)
	}
	return NewContext(ordering...)
}

// String returns a string representation of the ordering, such as "[x, y]".
func (c *Context) String() string {
	buf := bytes.NewBuffer(nil)
	fmt.Fprintf(buf, "[")
	for i, v := range c.vars {
		if i > 0 {
			fmt.Fprintf(buf, ", ")
		}
		fmt.Fprintf(buf, "%v", v)
	}
	fmt.Fprintf(buf, "]")
	return buf.String()
}

// DefaultInternCacheSize is the default number of orderings kept interned.
const DefaultInternCacheSize = 4096

type interner struct {
	cache *lru.Cache
}

var interned = newInterner(DefaultInternCacheSize)

func newInterner(size int) *interner {
	cache, err := lru.NewWithEvict(size, func(key, value interface{}) {
		log.Debugf("context %v evicted from intern cache", value)
	})
	if err != nil {
		panic(err)
	}
	return &interner{cache: cache}
}

// intern returns the cached Context equal to c, caching c if there is none.
func (in *interner) intern(c *Context) *Context {
	if prev, ok := in.cache.Get(c.key); ok {
		return prev.(*Context)
	}
	prev, ok, _ := in.cache.PeekOrAdd(c.key, c)
	if ok {
		return prev.(*Context)
	}
	metrics.contextInterned.Inc()
	return c
}

func (in *interner) resize(size int) {
	if evicted := in.cache.Resize(size); evicted > 0 {
		log.Debugf("resized context intern cache to %d, %d evicted", size, evicted)
	}
}
