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

// Package store provides content-addressed persistence for polynomials.
//
// Each polynomial is stored under the Base58-encoded SHA-256 digest of its
// encoded record, so equal polynomials over equal contexts share a key.
package store

import (
	"crypto/sha256"

	"github.com/pkg/errors"
	"gopkg.in/basen.v1"

	"ctxpoly"
)

var ErrNotFound = errors.New("polynomial not found")
var ErrCorruptRecord = errors.New("corrupt polynomial record")

// Key identifies a stored polynomial.
type Key string

// String implements the fmt.Stringer interface.
func (k Key) String() string {
	return string(k)
}

// KeyOf returns the key of an encoded polynomial record.
func KeyOf(record []byte) Key {
	sum := sha256.Sum256(record)
	return Key(basen.Base58.EncodeToString(sum[:]))
}

// Store persists polynomials by content.
type Store interface {
	// Put stores p, returning its key. Storing an equal polynomial again
	// returns the same key.
	Put(p *ctxpoly.Polynomial) (Key, error)

	// Get returns the polynomial stored under key, over the context ctx.
	// If ctx is nil, the stored variable ordering is rebuilt.
	Get(key Key, ctx *ctxpoly.Context) (*ctxpoly.Polynomial, error)

	Has(key Key) (bool, error)

	// Delete removes the polynomial stored under key. Deleting an absent
	// key returns ErrNotFound.
	Delete(key Key) error

	// Keys returns the keys of all stored polynomials in ascending order.
	Keys() ([]Key, error)

	Close() error
}
