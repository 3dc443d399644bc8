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
	"bytes"
	"encoding/gob"
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"ctxpoly"
)

type record struct {
	// Vars are the names of the context ordering.
	Vars  []string
	Terms []termRecord
}

type termRecord struct {
	Coeff  *big.Int
	Powers []powerRecord
}

// powerRecord refers to a variable by its position in record.Vars.
type powerRecord struct {
	Var int
	Exp uint
}

// corrupt wraps a decoding failure so that both ErrCorruptRecord and cause
// match with errors.Is.
func corrupt(cause error) error {
	return errors.WithStack(fmt.Errorf("%w: %w", ErrCorruptRecord, cause))
}

// Encode returns the canonical record of p.
func Encode(p *ctxpoly.Polynomial) ([]byte, error) {
	ctx := p.Context()
	var rec record
	for _, v := range ctx.Variables() {
		rec.Vars = append(rec.Vars, v.Name())
	}
	for _, m := range p.Monomials() {
		t := termRecord{Coeff: m.Coeff()}
		for _, pw := range m.Powers() {
			t.Powers = append(t.Powers, powerRecord{Var: pw.Index, Exp: pw.Exp})
		}
		rec.Terms = append(rec.Terms, t)
	}
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(&rec)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return buf.Bytes(), nil
}

// Decode returns the polynomial of an encoded record over ctx. Variables
// are resolved by name with ctxpoly.VariableNamed. If ctx is nil, the
// record's ordering is used.
func Decode(data []byte, ctx *ctxpoly.Context) (*ctxpoly.Polynomial, error) {
	var rec record
	err := gob.NewDecoder(bytes.NewReader(data)).Decode(&rec)
	if err != nil {
		return nil, corrupt(err)
	}

	vars := make([]ctxpoly.Variable, len(rec.Vars))
	for i, name := range rec.Vars {
		vars[i] = ctxpoly.VariableNamed(name)
	}
	if ctx == nil {
		ctx, err = ctxpoly.NewContext(vars...)
		if err != nil {
			return nil, corrupt(err)
		}
	}

	terms := make([]ctxpoly.Term, len(rec.Terms))
	for i, tr := range rec.Terms {
		if tr.Coeff == nil || tr.Coeff.Sign() == 0 {
			return nil, errors.Wrap(ErrCorruptRecord, "zero coefficient")
		}
		t := ctxpoly.Term{Coeff: tr.Coeff}
		for _, pr := range tr.Powers {
			if pr.Var < 0 || pr.Var >= len(vars) || pr.Exp == 0 {
				return nil, errors.Wrapf(ErrCorruptRecord, "invalid power %d^%d", pr.Var, pr.Exp)
			}
			v := vars[pr.Var]
			if !ctx.Has(v) {
				return nil, errors.Wrapf(ctxpoly.ErrVariableNotInContext, "variable %q not in %v", v.Name(), ctx)
			}
			t.Powers = append(t.Powers, ctxpoly.VarPower{Var: v, Exp: pr.Exp})
		}
		terms[i] = t
	}
	return ctxpoly.NewPolynomial(ctx, terms...), nil
}
