package model

// Sections is an insertion-ordered heading → body map.
// Setting an existing heading replaces its body but keeps its position.
type Sections struct {
	order  []string
	bodies map[string]string
}

// NewSections returns an empty Sections.
func NewSections() *Sections {
	return &Sections{bodies: make(map[string]string)}
}

// Set stores body under heading.
func (s *Sections) Set(heading, body string) {
	if _, ok := s.bodies[heading]; !ok {
		s.order = append(s.order, heading)
	}
	s.bodies[heading] = body
}

// Get returns the body for heading and whether it exists.
func (s *Sections) Get(heading string) (string, bool) {
	if s == nil {
		return "", false
	}
	body, ok := s.bodies[heading]
	return body, ok
}

// Headings returns headings in first-seen document order.
func (s *Sections) Headings() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of distinct headings.
func (s *Sections) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}
