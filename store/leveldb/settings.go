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

package leveldb

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Settings configures a leveldb polynomial store.
type Settings struct {
	Path        string `toml:"path"`
	CacheSizeMB int    `toml:"cacheSizeMB"`
}

const (
	DefaultPath        = "ctxpoly.db"
	DefaultCacheSizeMB = 8
)

// DefaultSettings returns the default leveldb store settings.
func DefaultSettings() *Settings {
	return &Settings{
		Path:        DefaultPath,
		CacheSizeMB: DefaultCacheSizeMB,
	}
}

// Resolve validates the settings.
func (s *Settings) Resolve() error {
	if s.Path == "" {
		return errors.New("missing leveldb path")
	}
	if s.CacheSizeMB < 0 {
		return errors.Errorf("invalid cacheSizeMB %d", s.CacheSizeMB)
	}
	return nil
}

// ParseSettings parses the [ctxpoly.store.leveldb] table of a TOML document.
func ParseSettings(data string) (*Settings, error) {
	var doc struct {
		Ctxpoly struct {
			Store struct {
				LevelDB Settings `toml:"leveldb"`
			} `toml:"store"`
		} `toml:"ctxpoly"`
	}
	doc.Ctxpoly.Store.LevelDB = *DefaultSettings()
	_, err := toml.Decode(data, &doc)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	settings := &doc.Ctxpoly.Store.LevelDB
	err = settings.Resolve()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return settings, nil
}
