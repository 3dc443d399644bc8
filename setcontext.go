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
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SetContext moves p to the context c. Every variable occurring in p must be
// in c, otherwise ErrVariableNotInContext is returned and p is unchanged.
//
// When one of the orderings extends the other, the monomial order is
// unaffected and only variable positions are relabeled. Otherwise the
// monomials are sorted into the canonical order of c.
func (p *Polynomial) SetContext(c *Context) error {
	p.check()
	if c == nil {
		contractf("nil context")
	}
	for _, v := range p.Variables().Items() {
		if !c.Has(v) {
			return errors.Wrapf(ErrVariableNotInContext, "variable %q not in %v", v.Name(), c)
		}
	}
	if p.ctx.Equal(c) {
		return nil
	}

	old := p.ctx
	reorder := !(c.IsExtensionOf(old) || old.IsExtensionOf(c))
	terms := make([]*Monomial, len(p.terms))
	for i, m := range p.terms {
		powers := make([]Power, len(m.powers))
		for j, pw := range m.powers {
			powers[j] = Power{Index: c.mustLookup(old.vars[pw.Index]), Exp: pw.Exp}
		}
		if reorder {
			sort.Slice(powers, func(a, b int) bool { return powers[a].Index < powers[b].Index })
		}
		terms[i] = &Monomial{coeff: m.coeff, powers: powers}
	}
	if reorder {
		sortTerms(terms)
		metrics.contextReorder.Inc()
		log.Debugf("reordered %d monomials from %v to %v", len(terms), old, c)
	} else {
		metrics.contextRelabel.Inc()
	}
	p.set(c, terms)
	return nil
}

// WithContext returns a copy of p moved to the context c.
func (p *Polynomial) WithContext(c *Context) (*Polynomial, error) {
	q := p.Copy()
	if err := q.SetContext(c); err != nil {
		return nil, errors.WithStack(err)
	}
	return q, nil
}
