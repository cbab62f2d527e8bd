package sweep

// span is a half-open interval [Lo, Hi) over the compressed y-index space.
type span struct {
	Lo, Hi int
}

// contains reports whether s fully contains t, i.e. s.Lo <= t.Lo and
// t.Hi <= s.Hi.
func (s span) contains(t span) bool {
	return s.Lo <= t.Lo && t.Hi <= s.Hi
}

// overlaps reports whether s and t share at least one index.
func (s span) overlaps(t span) bool {
	return s.Lo < t.Hi && t.Lo < s.Hi
}
