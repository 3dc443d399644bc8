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
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var metrics = struct {
	contextInterned prometheus.Counter
	contextRelabel  prometheus.Counter
	contextReorder  prometheus.Counter
	normalize       prometheus.Counter
}{
	contextInterned: prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ctxpoly",
			Name:      "context_interned_total",
			Help:      "Count of distinct variable orderings interned since startup",
		},
	),
	contextRelabel: prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ctxpoly",
			Name:      "context_relabel_total",
			Help:      "Count of context changes served by relabeling variables",
		},
	),
	contextReorder: prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ctxpoly",
			Name:      "context_reorder_total",
			Help:      "Count of context changes which required reordering monomials",
		},
	),
	normalize: prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ctxpoly",
			Name:      "normalize_total",
			Help:      "Count of polynomials normalized since startup",
		},
	),
}

var metricsRegister sync.Once

// RegisterMetrics registers the package metrics with reg, or with the
// default prometheus registry if reg is nil. Only the first call has an
// effect.
func RegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	metricsRegister.Do(func() {
		reg.MustRegister(metrics.contextInterned)
		reg.MustRegister(metrics.contextRelabel)
		reg.MustRegister(metrics.contextReorder)
		reg.MustRegister(metrics.normalize)
	})
}
