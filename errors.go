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
	"fmt"

	"github.com/pkg/errors"
)

var ErrDegreeOfZeroPolynomial = errors.New("degree of the zero polynomial is undefined")
var ErrVariableNotInContext = errors.New("variable not in context")
var ErrDuplicateVariable = errors.New("duplicate variable in ordering")
var ErrNoVariable = errors.New("NoVariable in ordering")

// contractf panics with a contract violation. These are programming errors,
// such as combining polynomials from different contexts.
func contractf(format string, args ...interface{}) {
	panic(fmt.Sprintf("ctxpoly: "+format, args...))
}
