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

// Package leveldb provides a leveldb implementation of the polynomial
// store.
package leveldb

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"ctxpoly"
	"ctxpoly/store"
)

const keyPrefix = "poly:"

// ErrNotOpen is returned by operations on a Store before Create or after
// Close.
var ErrNotOpen = errors.New("polynomial store not open")

// Store is a store.Store kept in a leveldb database. Call Create before
// using it.
type Store struct {
	settings Settings
	db       *leveldb.DB
}

var _ store.Store = (*Store)(nil)

// New returns a Store for the given settings.
func New(settings *Settings) (*Store, error) {
	if err := settings.Resolve(); err != nil {
		return nil, errors.WithStack(err)
	}
	return &Store{settings: *settings}, nil
}

// Create opens the database, creating it if it does not exist.
func (s *Store) Create() error {
	var err error
	s.db, err = leveldb.OpenFile(s.settings.Path, &opt.Options{
		BlockCacheCapacity: s.settings.CacheSizeMB * opt.MiB,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	log.Debugf("opened polynomial store %q", s.settings.Path)
	return nil
}

// Drop closes and removes the database.
func (s *Store) Drop() error {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			log.Warningf("failed to close leveldb: %v", err)
		}
		s.db = nil
	}
	return errors.WithStack(os.RemoveAll(s.settings.Path))
}

// Close implements store.Store.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	log.Debugf("closed polynomial store %q", s.settings.Path)
	return errors.WithStack(err)
}

func (s *Store) open() error {
	if s.db == nil {
		return errors.WithStack(ErrNotOpen)
	}
	return nil
}

func dbKey(key store.Key) []byte {
	return []byte(keyPrefix + string(key))
}

// Put implements store.Store.
func (s *Store) Put(p *ctxpoly.Polynomial) (store.Key, error) {
	if err := s.open(); err != nil {
		return "", err
	}
	data, err := store.Encode(p)
	if err != nil {
		return "", errors.WithStack(err)
	}
	key := store.KeyOf(data)
	err = s.db.Put(dbKey(key), data, nil)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return key, nil
}

// Get implements store.Store.
func (s *Store) Get(key store.Key, ctx *ctxpoly.Context) (*ctxpoly.Polynomial, error) {
	if err := s.open(); err != nil {
		return nil, err
	}
	data, err := s.db.Get(dbKey(key), nil)
	if err == leveldb.ErrNotFound {
		return nil, errors.Wrapf(store.ErrNotFound, "key %q", key)
	} else if err != nil {
		return nil, errors.WithStack(err)
	}
	return store.Decode(data, ctx)
}

// Has implements store.Store.
func (s *Store) Has(key store.Key) (bool, error) {
	if err := s.open(); err != nil {
		return false, err
	}
	ok, err := s.db.Has(dbKey(key), nil)
	return ok, errors.WithStack(err)
}

// Delete implements store.Store.
func (s *Store) Delete(key store.Key) error {
	ok, err := s.Has(key)
	if err != nil {
		return errors.WithStack(err)
	}
	if !ok {
		return errors.Wrapf(store.ErrNotFound, "key %q", key)
	}
	return errors.WithStack(s.db.Delete(dbKey(key), nil))
}

// Keys implements store.Store. leveldb iterates keys in ascending order.
func (s *Store) Keys() ([]store.Key, error) {
	if err := s.open(); err != nil {
		return nil, err
	}
	var keys []store.Key
	iter := s.db.NewIterator(util.BytesPrefix([]byte(keyPrefix)), nil)
	defer iter.Release()
	for iter.Next() {
		keys = append(keys, store.Key(iter.Key()[len(keyPrefix):]))
	}
	return keys, errors.WithStack(iter.Error())
}
