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
	"bytes"
	"fmt"
	"sync"
)

// Variable identifies a symbolic unknown. Variables are allocated from a
// process-wide registry and are never reused.
type Variable uint32

// NoVariable is the sentinel for "no variable", such as the main variable of
// a constant polynomial.
const NoVariable Variable = 0

type registry struct {
	mu     sync.RWMutex
	names  []string
	byName map[string]Variable
}

var variables = &registry{
	names:  []string{"_"},
	byName: make(map[string]Variable),
}

func (r *registry) add(name string) Variable {
	v := Variable(len(r.names))
	r.names = append(r.names, name)
	if _, ok := r.byName[name]; !ok {
		r.byName[name] = v
	}
	return v
}

// NewVariable registers a new variable with the given display name. Names
// need not be unique; each call returns a distinct Variable.
func NewVariable(name string) Variable {
	variables.mu.Lock()
	defer variables.mu.Unlock()
	return variables.add(name)
}

// VariableNamed returns the first variable registered under name,
// registering a new one if there is none.
func VariableNamed(name string) Variable {
	variables.mu.RLock()
	v, ok := variables.byName[name]
	variables.mu.RUnlock()
	if ok {
		return v
	}

	variables.mu.Lock()
	defer variables.mu.Unlock()
	if v, ok := variables.byName[name]; ok {
		return v
	}
	return variables.add(name)
}

// Name returns the display name of the variable.
func (v Variable) Name() string {
	variables.mu.RLock()
	defer variables.mu.RUnlock()
	if int(v) >= len(variables.names) {
		return fmt.Sprintf("_%d", uint32(v))
	}
	return variables.names[v]
}

// String implements the fmt.Stringer interface.
func (v Variable) String() string {
	return v.Name()
}

// VariableSet is a duplicate-free collection of variables which remembers
// insertion order.
type VariableSet struct {
	items []Variable
	seen  map[Variable]struct{}
}

// NewVariableSet returns a new VariableSet containing the given variables.
func NewVariableSet(vars ...Variable) *VariableSet {
	s := &VariableSet{seen: make(map[Variable]struct{})}
	for _, v := range vars {
		s.Add(v)
	}
	return s
}

// Add adds a variable to the set.
func (s *VariableSet) Add(v Variable) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

// Has returns whether v is a member of the set.
func (s *VariableSet) Has(v Variable) bool {
	if s == nil {
		return false
	}
	_, ok := s.seen[v]
	return ok
}

// Len returns the size of the set.
func (s *VariableSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Items returns the members of the set in insertion order.
func (s *VariableSet) Items() []Variable {
	if s == nil {
		return nil
	}
	return append([]Variable(nil), s.items...)
}

// String returns a string representation of the set.
func (s *VariableSet) String() string {
	buf := bytes.NewBuffer(nil)
	fmt.Fprintf(buf, "{")
	for i, v := range s.Items() {
		if i > 0 {
			fmt.Fprintf(buf, ", ")
		}
		fmt.Fprintf(buf, "%v", v)
	}
	fmt.Fprintf(buf, "}")
	return buf.String()
}
