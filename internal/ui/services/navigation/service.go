package navigation

// reservedRows is the space taken by the title, region bar, column header,
// scroll indicators, help line and container padding
const reservedRows = 11

// Service handles cursor and viewport movement over the result list
type Service struct {
	state *State
}

// NewService creates a new navigation service
func NewService() *Service {
	return &Service{
		state: &State{
			ViewportHeight: 20, // updated on the first window size message
		},
	}
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns current viewport offset
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns current viewport height
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates the number of visible rows from the terminal height
func (s *Service) SetViewportHeight(height int) {
	effectiveHeight := height - reservedRows
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}
	s.state.ViewportHeight = effectiveHeight
	s.ensureVisible()
}

// SetCount updates the number of rows, keeping the cursor in range
func (s *Service) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	s.state.Count = n
	s.state.Cursor = s.clampIndex(s.state.Cursor)
	if lastPage := n - s.state.ViewportHeight; s.state.ViewportOffset > lastPage {
		s.state.ViewportOffset = max(lastPage, 0)
	}
	s.ensureVisible()
}

// Reset moves the cursor back to the first row
func (s *Service) Reset() {
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	switch direction {
	case DirectionUp:
		s.MoveToIndex(s.state.Cursor - 1)
	case DirectionDown:
		s.MoveToIndex(s.state.Cursor + 1)
	case DirectionPageUp:
		s.pageUp()
	case DirectionPageDown:
		s.MoveToIndex(s.state.Cursor + s.pageSize())
	case DirectionHome:
		s.Reset()
	case DirectionEnd:
		s.MoveToIndex(s.maxIndex())
	}
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
}

// VisibleRange returns the half-open range of rows in the viewport
func (s *Service) VisibleRange() (int, int) {
	start := s.state.ViewportOffset
	end := start + s.state.ViewportHeight
	if end > s.state.Count {
		end = s.state.Count
	}
	if start > end {
		start = end
	}
	return start, end
}

func (s *Service) pageUp() {
	pageSize := s.pageSize()
	s.state.Cursor = s.clampIndex(s.state.Cursor - pageSize)

	s.state.ViewportOffset -= pageSize
	if s.state.ViewportOffset < 0 {
		s.state.ViewportOffset = 0
	}
	s.ensureVisible()
}

func (s *Service) pageSize() int {
	if s.state.ViewportHeight > 1 {
		return s.state.ViewportHeight - 1
	}
	return 1
}

func (s *Service) maxIndex() int {
	if s.state.Count == 0 {
		return 0
	}
	return s.state.Count - 1
}

func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if last := s.maxIndex(); index > last {
		return last
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
