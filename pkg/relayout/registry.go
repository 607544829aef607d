package relayout

import "fmt"

type Registry struct {
	layouts map[string]Layout
}

func NewRegistry(layouts ...Layout) *Registry {
	r := &Registry{layouts: make(map[string]Layout)}
	for _, l := range layouts {
		r.Add(l)
	}
	return r
}

func DefaultRegistry() *Registry {
	return NewRegistry(English, Ukrainian)
}

// Add registers l, replacing any layout with the same name.
func (r *Registry) Add(l Layout) {
	r.layouts[l.Name] = l
}

func (r *Registry) GetLayout(name string) (Layout, bool) {
	l, ok := r.layouts[name]
	return l, ok
}

func (r *Registry) Pair(first, second string) (Pair, error) {
	a, ok := r.GetLayout(first)
	if !ok {
		return Pair{}, fmt.Errorf("layout %q: %w", first, ErrUnknownLayout)
	}

	b, ok := r.GetLayout(second)
	if !ok {
		return Pair{}, fmt.Errorf("layout %q: %w", second, ErrUnknownLayout)
	}

	return NewPair(a, b)
}
