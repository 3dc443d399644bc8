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
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	gc "gopkg.in/check.v1"
)

type SettingsSuite struct{}

var _ = gc.Suite(&SettingsSuite{})

func (s *SettingsSuite) TearDownTest(c *gc.C) {
	c.Assert(Configure(DefaultSettings()), gc.IsNil)
}

func (s *SettingsSuite) TestDefaults(c *gc.C) {
	settings, err := ParseSettings("")
	c.Assert(err, gc.IsNil)
	c.Assert(settings, gc.DeepEquals, DefaultSettings())
	c.Assert(settings.CheckOrder, gc.Equals, true)
	c.Assert(settings.InternCacheSize, gc.Equals, DefaultInternCacheSize)
}

func (s *SettingsSuite) TestParse(c *gc.C) {
	settings, err := ParseSettings(`
[ctxpoly]
checkOrder=false
internCacheSize=16
loglevel="debug"
logfile="/tmp/ctxpoly.log"
`)
	c.Assert(err, gc.IsNil)
	c.Assert(settings, gc.DeepEquals, &Settings{
		CheckOrder:      false,
		InternCacheSize: 16,
		LogLevel:        "debug",
		LogFile:         "/tmp/ctxpoly.log",
	})
}

func (s *SettingsSuite) TestParseInvalid(c *gc.C) {
	_, err := ParseSettings(`
[ctxpoly]
internCacheSize=0
`)
	c.Assert(err, gc.ErrorMatches, "invalid internCacheSize 0")

	_, err = ParseSettings(`
[ctxpoly]
loglevel="loud"
`)
	c.Assert(err, gc.ErrorMatches, `invalid loglevel "loud".*`)

	_, err = ParseSettings(`[ctxpoly`)
	c.Assert(err, gc.NotNil)
}

func (s *SettingsSuite) TestConfigure(c *gc.C) {
	settings := DefaultSettings()
	settings.CheckOrder = false
	c.Assert(Configure(settings), gc.IsNil)
	c.Assert(checkOrder.Load(), gc.Equals, false)

	settings.InternCacheSize = -1
	err := Configure(settings)
	c.Assert(err, gc.NotNil)
	c.Assert(errors.Cause(err).Error(), gc.Equals, "invalid internCacheSize -1")
}

func (s *SettingsSuite) TestInitLog(c *gc.C) {
	defer func() {
		c.Assert(InitLog(DefaultSettings()), gc.IsNil)
	}()
	dir := c.MkDir()
	settings := DefaultSettings()
	settings.LogLevel = "DEBUG"
	settings.LogFile = filepath.Join(dir, "ctxpoly.log")
	c.Assert(InitLog(settings), gc.IsNil)
	c.Assert(log.GetLevel(), gc.Equals, log.DebugLevel)
	log.Debug("hello")

	f, err := os.Open(settings.LogFile)
	c.Assert(err, gc.IsNil)
	defer f.Close()
	data, err := ioutil.ReadAll(f)
	c.Assert(err, gc.IsNil)
	c.Assert(strings.Contains(string(data), "hello"), gc.Equals, true)

	settings.LogFile = filepath.Join(dir, "missing", "ctxpoly.log")
	c.Assert(InitLog(settings), gc.ErrorMatches, "failed to open LogFile.*")
}
