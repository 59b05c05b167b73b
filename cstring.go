package fixedstr

import "unsafe"

// ViewOfCString borrows a NUL-terminated byte sequence. A nil pointer
// is the empty view and is never dereferenced.
func ViewOfCString(p *byte) View {
	if p == nil {
		return View{}
	}
	return View{unsafe.Slice(p, cstrlen(p))}
}

func cstrlen(p *byte) int {
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return n
}

// CString returns a pointer to the NUL-terminated buffer for C-style
// interop. The pointee is owned by s and valid while s is alive.
func (s *String[A]) CString() *byte {
	return &s.raw()[0]
}

// EqualCString compares against a NUL-terminated byte sequence. A nil
// pointer never equals any value, the empty one included.
func (s String[A]) EqualCString(p *byte) bool {
	if p == nil {
		return false
	}
	return s.EqualView(ViewOfCString(p))
}
