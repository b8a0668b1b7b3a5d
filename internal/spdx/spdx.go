// SPDX-License-Identifier: MPL-2.0

package spdx

import (
	"slices"
	"strings"
	"sync"

	"github.com/github/go-spdx/v2/spdxexp/spdxlicenses"
)

// Set is an immutable set of SPDX license identifiers.
// Membership is exact and case-sensitive: "MIT" is a member, "mit" is not.
type Set struct {
	ids    map[string]struct{}
	sorted []string
}

var canonical = sync.OnceValue(func() *Set {
	return NewSet(append(spdxlicenses.GetLicenses(), spdxlicenses.GetDeprecated()...)...)
})

// Canonical returns the set of current and deprecated SPDX license identifiers.
func Canonical() *Set {
	return canonical()
}

// NewSet builds a set from the given identifiers. Blank entries are ignored.
func NewSet(ids ...string) *Set {
	s := &Set{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := s.ids[id]; dup {
			continue
		}
		s.ids[id] = struct{}{}
		s.sorted = append(s.sorted, id)
	}
	slices.Sort(s.sorted)
	return s
}

// Contains reports whether id is a member of the set.
func (s *Set) Contains(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of identifiers in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.sorted)
}

// Suggestions returns the identifiers in sorted order, for autocompletion.
// The returned slice is a copy.
func (s *Set) Suggestions() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.sorted)
}
