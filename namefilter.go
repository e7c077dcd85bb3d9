package botica

import (
	"bufio"
	"io"
	"slices"
	"strings"
	"unicode/utf8"
)

// minReferenceNameLen is the shortest normalized reference name kept.
// Shorter lines are treated as noise.
const minReferenceNameLen = 4

// ReferenceNameSet is the allow-list of normalized medicine names.
// It is immutable after construction and safe for concurrent reads.
type ReferenceNameSet struct {
	exact map[string]struct{}
	names []string
}

// NewReferenceNameSet normalizes each line and keeps the ones with at least
// four characters.
func NewReferenceNameSet(lines []string) *ReferenceNameSet {
	s := &ReferenceNameSet{exact: make(map[string]struct{})}
	for _, line := range lines {
		name := Normalize(strings.TrimSpace(line))
		if utf8.RuneCountInString(name) < minReferenceNameLen {
			continue
		}
		if _, ok := s.exact[name]; ok {
			continue
		}
		s.exact[name] = struct{}{}
		s.names = append(s.names, name)
	}
	slices.Sort(s.names)
	return s
}

// ReadReferenceNames reads one name per line from r.
func ReadReferenceNames(r io.Reader) (*ReferenceNameSet, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimPrefix(scanner.Text(), "\ufeff"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewReferenceNameSet(lines), nil
}

// Len returns the number of reference names.
func (s *ReferenceNameSet) Len() int {
	return len(s.names)
}

// Names returns the reference names in sorted order.
func (s *ReferenceNameSet) Names() []string {
	return slices.Clone(s.names)
}

// Matches reports whether the candidate product name contains a reference
// name as a whole space-delimited token sequence. A reference name that only
// occurs inside a longer word does not match.
//
// The checks are: exact equality, the reference name surrounded by spaces
// inside the space-padded candidate, or the candidate starting with the
// reference name followed by a space. Punctuation is not treated as a word
// boundary.
func (s *ReferenceNameSet) Matches(candidate string) bool {
	name := Normalize(candidate)
	if _, ok := s.exact[name]; ok {
		return true
	}
	padded := " " + name + " "
	for _, ref := range s.names {
		if strings.Contains(padded, " "+ref+" ") || strings.HasPrefix(name, ref+" ") {
			return true
		}
	}
	return false
}
