// Package skillset holds the in-memory skill collection shared by users and jobs.
//
// Names are compared exactly and case-sensitively. A Set keeps the order in
// which names were first added so that every derived slice is deterministic.
package skillset

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrMalformed = errors.New("malformed skill list")

type Set struct {
	names []string
	index map[string]struct{}
}

func New(names ...string) Set {
	s := Set{
		names: make([]string, 0, len(names)),
		index: make(map[string]struct{}, len(names)),
	}
	for _, n := range names {
		s.add(n)
	}
	return s
}

func (s *Set) add(name string) {
	if s.index == nil {
		s.index = map[string]struct{}{}
	}
	if _, ok := s.index[name]; ok {
		return
	}
	s.index[name] = struct{}{}
	s.names = append(s.names, name)
}

func (s Set) Len() int {
	return len(s.names)
}

func (s Set) IsEmpty() bool {
	return len(s.names) == 0
}

func (s Set) Contains(name string) bool {
	if s.index == nil {
		return false
	}
	_, ok := s.index[name]
	return ok
}

// Names returns a copy of the members in insertion order.
func (s Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Intersect keeps the members of s that are also in other, in s's order.
func (s Set) Intersect(other Set) Set {
	out := New()
	for _, n := range s.names {
		if other.Contains(n) {
			out.add(n)
		}
	}
	return out
}

// Difference keeps the members of s that are not in other, in s's order.
func (s Set) Difference(other Set) Set {
	out := New()
	for _, n := range s.names {
		if !other.Contains(n) {
			out.add(n)
		}
	}
	return out
}

// Equal compares membership only.
func (s Set) Equal(other Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, n := range s.names {
		if !other.Contains(n) {
			return false
		}
	}
	return true
}

// HasBlank reports whether any member is empty after trimming whitespace.
func (s Set) HasBlank() bool {
	for _, n := range s.names {
		if strings.TrimSpace(n) == "" {
			return true
		}
	}
	return false
}

func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

func (s *Set) UnmarshalJSON(b []byte) error {
	var names []string
	if err := json.Unmarshal(b, &names); err != nil {
		return ErrMalformed
	}
	*s = New(names...)
	return nil
}
