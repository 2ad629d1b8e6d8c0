package navigation

// Service moves a cursor over the list shown in the body of a screen and
// keeps it inside the viewport
type Service struct {
	state State
}

// NewService creates a cursor for an empty list
func NewService() *Service {
	return &Service{
		state: State{ViewportHeight: 10}, // updated on the first WindowSizeMsg
	}
}

// State returns a copy of the cursor state
func (s *Service) State() State {
	return s.state
}

// Cursor returns the current index
func (s *Service) Cursor() int {
	return s.state.Cursor
}

// Offset returns the first visible index
func (s *Service) Offset() int {
	return s.state.ViewportOffset
}

// Reset moves back to the top of a list with count items
func (s *Service) Reset(count int) {
	s.state.Count = max(count, 0)
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
}

// SetViewportHeight updates how many rows are visible
func (s *Service) SetViewportHeight(height int) {
	s.state.ViewportHeight = max(height, 1)
	s.ensureVisible()
}

// Navigate moves the cursor. It reports whether the cursor moved.
func (s *Service) Navigate(direction Direction) bool {
	old := s.state.Cursor
	page := max(s.state.ViewportHeight-1, 1)

	switch direction {
	case DirectionUp:
		s.state.Cursor--
	case DirectionDown:
		s.state.Cursor++
	case DirectionPageUp:
		s.state.Cursor -= page
	case DirectionPageDown:
		s.state.Cursor += page
	case DirectionHome:
		s.state.Cursor = 0
	case DirectionEnd:
		s.state.Cursor = s.state.Count - 1
	}

	s.state.Cursor = s.clamp(s.state.Cursor)
	s.ensureVisible()
	return old != s.state.Cursor
}

// MoveToIndex moves the cursor to index, clamped to the list
func (s *Service) MoveToIndex(index int) {
	s.state.Cursor = s.clamp(index)
	s.ensureVisible()
}

// Visible returns the half-open index range currently on screen
func (s *Service) Visible() (from, to int) {
	from = s.state.ViewportOffset
	to = min(from+s.state.ViewportHeight, s.state.Count)
	return from, to
}

func (s *Service) clamp(index int) int {
	if s.state.Count == 0 || index < 0 {
		return 0
	}
	if index >= s.state.Count {
		return s.state.Count - 1
	}
	return index
}

func (s *Service) ensureVisible() {
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
}
