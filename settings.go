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
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Settings holds the package-wide configuration.
type Settings struct {
	// CheckOrder validates the canonical monomial order after every
	// mutation, panicking on violation.
	CheckOrder bool `toml:"checkOrder"`

	// InternCacheSize bounds the number of interned contexts.
	InternCacheSize int `toml:"internCacheSize"`

	LogLevel string `toml:"loglevel"`
	LogFile  string `toml:"logfile"`
}

const (
	DefaultCheckOrder = true
	DefaultLogLevel   = "info"
)

var defaultSettings = Settings{
	CheckOrder:      DefaultCheckOrder,
	InternCacheSize: DefaultInternCacheSize,
	LogLevel:        DefaultLogLevel,
}

// DefaultSettings returns the default configuration settings.
func DefaultSettings() *Settings {
	settings := defaultSettings
	return &settings
}

// Resolve validates the settings. Use Resolve after decoding from TOML.
func (s *Settings) Resolve() error {
	if s.InternCacheSize <= 0 {
		return errors.Errorf("invalid internCacheSize %d", s.InternCacheSize)
	}
	if _, err := log.ParseLevel(strings.ToLower(s.LogLevel)); err != nil {
		return errors.Wrapf(err, "invalid loglevel %q", s.LogLevel)
	}
	return nil
}

// ParseSettings parses a TOML-formatted string representation into Settings.
func ParseSettings(data string) (*Settings, error) {
	var doc struct {
		Ctxpoly Settings `toml:"ctxpoly"`
	}
	doc.Ctxpoly = *DefaultSettings()
	_, err := toml.Decode(data, &doc)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	settings := &doc.Ctxpoly
	err = settings.Resolve()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return settings, nil
}

// Configure applies the settings to the package.
func Configure(s *Settings) error {
	if err := s.Resolve(); err != nil {
		return errors.WithStack(err)
	}
	checkOrder.Store(s.CheckOrder)
	interned.resize(s.InternCacheSize)
	return nil
}
