package fixedstr

import (
	"bytes"
	"unsafe"
)

// View is a non-owning window over existing character data, the
// interchange type every comparison and concatenation reduces to. A
// view stays valid only as long as its source does.
type View struct {
	b []byte
}

// ViewOf borrows the bytes of s without copying.
func ViewOf(s string) View {
	if len(s) == 0 {
		return View{}
	}
	return View{unsafe.Slice(unsafe.StringData(s), len(s))}
}

// ViewOfBytes borrows b. A nil slice is the empty view.
func ViewOfBytes(b []byte) View { return View{b} }

func (v View) Len() int      { return len(v.b) }
func (v View) IsEmpty() bool { return len(v.b) == 0 }

// Raw exposes the viewed bytes without copying. Callers must not
// mutate them or hold them past the source lifetime.
func (v View) Raw() []byte { return v.b }

// Bytes returns a copy detached from the source.
func (v View) Bytes() []byte { return append([]byte(nil), v.b...) }

// String copies the viewed bytes into an owned string.
func (v View) String() string { return string(v.b) }

// Equal compares content, not provenance.
func (v View) Equal(o View) bool { return bytes.Equal(v.b, o.b) }

// ConcatViews joins any mix of operands into one owned string.
// Capacity and operand kind are erased before the join, which is what
// lets differently sized fixed strings concatenate like plain ones.
func ConcatViews(parts ...View) string {
	n := 0
	for _, p := range parts {
		n += len(p.b)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p.b...)
	}
	return string(out)
}
