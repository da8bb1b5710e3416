package stream

import (
	"sync"

	"github.com/matt-g-everett/styletx/tween"
)

// Surface is an in-memory style block for one named element.
type Surface struct {
	name string

	mu    sync.RWMutex
	style tween.StyleMap
}

// NewSurface creates a Surface holding initial.
func NewSurface(name string, initial tween.StyleMap) *Surface {
	s := new(Surface)
	s.name = name
	s.style = tween.StyleMap{}.Merge(initial)
	return s
}

// Name returns the element name.
func (s *Surface) Name() string {
	return s.name
}

// ComputedStyle returns the current value of property, or "" when unset.
func (s *Surface) ComputedStyle(property string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return tween.FormatValue(s.style[property])
}

// ApplyStyle merges a batch of values.
func (s *Surface) ApplyStyle(style tween.StyleMap) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range style {
		s.style[k] = v
	}
}

// Snapshot returns a copy of the current style.
func (s *Surface) Snapshot() tween.StyleMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.style.Clone()
}
