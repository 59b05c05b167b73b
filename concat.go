package fixedstr

// Equal compares two fixed strings of any capacities by content, so
// String[[8]byte]("hi") equals String[[32]byte]("hi").
func Equal[A, B any](a *String[A], b *String[B]) bool {
	return a.View().Equal(b.View())
}

// Concat joins two fixed strings of any capacities. The result length
// is not bounded by either capacity, so it is an owned string.
func Concat[A, B any](a *String[A], b *String[B]) string {
	return ConcatViews(a.View(), b.View())
}

// ConcatString returns s+rhs as an owned string. For the mirrored
// operand order use ConcatViews(ViewOf(lhs), s.View()).
func (s *String[A]) ConcatString(rhs string) string {
	return ConcatViews(s.View(), ViewOf(rhs))
}

// ConcatView returns s+v as an owned string.
func (s *String[A]) ConcatView(v View) string {
	return ConcatViews(s.View(), v)
}

// ConcatCString returns s plus the pointed-at C string; a nil pointer
// concatenates as empty.
func (s *String[A]) ConcatCString(p *byte) string {
	return ConcatViews(s.View(), ViewOfCString(p))
}
