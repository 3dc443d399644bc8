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
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var logOut io.WriteCloser

// InitLog directs logging output to the configured LogFile, or to stderr if
// none is set, and applies the configured LogLevel. Calling it again closes
// a previously opened log file.
func InitLog(s *Settings) error {
	level, err := log.ParseLevel(strings.ToLower(s.LogLevel))
	if err != nil {
		return errors.Wrapf(err, "invalid LogLevel %q", s.LogLevel)
	}

	prev := logOut
	if s.LogFile == "" {
		logOut = nil
		log.SetOutput(os.Stderr)
	} else {
		f, err := os.OpenFile(s.LogFile, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
		if err != nil {
			return errors.Wrapf(err, "failed to open LogFile %q", s.LogFile)
		}
		logOut = f
		log.SetOutput(f)
	}
	if prev != nil {
		prev.Close()
	}
	log.SetLevel(level)
	log.Debug("log opened")
	return nil
}
