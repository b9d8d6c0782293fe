package model

import "sort"

// FunctionSet holds the unique function names extracted from one report.
type FunctionSet map[string]struct{}

// Add inserts a function name into the set.
func (s FunctionSet) Add(name string) {
	s[name] = struct{}{}
}

// Sorted returns the names in ascending code-point order.
func (s FunctionSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
