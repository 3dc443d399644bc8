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

package store

import (
	"sort"
	"sync"

	"github.com/pkg/errors"

	"ctxpoly"
)

// MemStore is a Store held in memory. It is safe for concurrent use.
type MemStore struct {
	mu      sync.RWMutex
	records map[Key][]byte
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{records: make(map[Key][]byte)}
}

// Put implements Store.
func (s *MemStore) Put(p *ctxpoly.Polynomial) (Key, error) {
	data, err := Encode(p)
	if err != nil {
		return "", errors.WithStack(err)
	}
	key := KeyOf(data)
	s.mu.Lock()
	s.records[key] = data
	s.mu.Unlock()
	return key, nil
}

// Get implements Store.
func (s *MemStore) Get(key Key, ctx *ctxpoly.Context) (*ctxpoly.Polynomial, error) {
	s.mu.RLock()
	data, ok := s.records[key]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "key %q", key)
	}
	return Decode(data, ctx)
}

// Has implements Store.
func (s *MemStore) Has(key Key) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[key]
	return ok, nil
}

// Delete implements Store.
func (s *MemStore) Delete(key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; !ok {
		return errors.Wrapf(ErrNotFound, "key %q", key)
	}
	delete(s.records, key)
	return nil
}

// Keys implements Store.
func (s *MemStore) Keys() ([]Key, error) {
	s.mu.RLock()
	keys := make([]Key, 0, len(s.records))
	for key := range s.records {
		keys = append(keys, key)
	}
	s.mu.RUnlock()
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys, nil
}

// Close implements Store.
func (s *MemStore) Close() error {
	return nil
}
