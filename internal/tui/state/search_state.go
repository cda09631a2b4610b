package state

import "strings"

// SearchState tracks the applied search query.
// The text being typed lives in the search input; Query is what the list is
// currently filtered by.
type SearchState struct {
	Query string
}

// NewSearchState creates a SearchState with no query.
func NewSearchState() *SearchState {
	return &SearchState{}
}

// Set stores the trimmed query. Returns true if it changed.
func (s *SearchState) Set(query string) bool {
	query = strings.TrimSpace(query)
	if query == s.Query {
		return false
	}
	s.Query = query
	return true
}

// Clear resets the search query to empty string.
func (s *SearchState) Clear() {
	s.Query = ""
}

// IsActive reports whether a query is narrowing the list.
func (s *SearchState) IsActive() bool {
	return s.Query != ""
}
