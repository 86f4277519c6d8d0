package cli

import "github.com/sunghoyun/vulnview/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Current record tree selection. Views and wizards read it to decide
	// what "run action" and "open report" target.
	Selection domain.Selection

	// Terminal dimensions
	Width  int
	Height int
}

// ClearSelection resets the tree selection.
func (s *SharedState) ClearSelection() {
	s.Selection = domain.NoSelection
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
