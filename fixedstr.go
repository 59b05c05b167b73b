package fixedstr

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"unsafe"
)

var (
	ErrNotByteArray = errors.New("fixedstr: backing type must be a byte array")
	ErrZeroCapacity = errors.New("fixedstr: backing array must have room for the terminator")
	ErrTruncated    = errors.New("fixedstr: source truncated to capacity-1 bytes")
)

// String is a fixed-capacity string whose bytes live inline in the
// backing array A. The storage location follows the containing object
// (stack, heap or global); nothing is heap-allocated except the
// explicitly owned conversions. The buffer is always NUL-terminated,
// so usable content is at most Cap()-1 bytes and logical content
// stops at the first NUL.
//
// A must be a byte array type such as [16]byte (or a named type with
// such an underlying type). Anything else panics with ErrNotByteArray
// on first use; a zero-length array panics with ErrZeroCapacity.
//
// The zero value is the empty string and is ready to use. Plain Go
// assignment copies the bytes; copies never alias each other.
type String[A any] struct {
	data A
}

// Make builds a String from src. Content that does not fit is kept as
// a truncated prefix and reported via ErrTruncated.
func Make[A any](src string) (String[A], error) {
	var s String[A]
	err := s.Assign(src)
	return s, err
}

// MustMake is Make that panics on truncation. Meant for literals
// whose fit is known at the call site.
func MustMake[A any](src string) String[A] {
	s, err := Make[A](src)
	if err != nil {
		panic(err)
	}
	return s
}

// Cap reports the total capacity in bytes of String[A], terminator
// included, without needing a value. Usable content is Cap-1 bytes.
func Cap[A any]() int { return capOf[A]() }

func capOf[A any]() int {
	t := reflect.TypeOf((*A)(nil)).Elem()
	if t.Kind() != reflect.Array || t.Elem().Kind() != reflect.Uint8 {
		panic(ErrNotByteArray)
	}
	n := t.Len()
	if n == 0 {
		panic(ErrZeroCapacity)
	}
	return n
}

// raw aliases the backing array as a byte slice. Every access funnels
// through here so the layout check cannot be skipped.
func (s *String[A]) raw() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&s.data)), capOf[A]())
}

// content is the bytes before the terminator.
func (s *String[A]) content() []byte {
	b := s.raw()
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b[:len(b)-1]
}

// Assign replaces the content with src. When src does not fit, the
// copy keeps a deterministic Cap()-1 byte prefix, the value stays
// NUL-terminated and valid, and ErrTruncated is returned. Bytes past
// the terminator keep whatever they held before. An interior NUL in
// src ends the logical content early, C-string style.
func (s *String[A]) Assign(src string) error {
	return s.AssignView(ViewOf(src))
}

// AssignBytes assigns from a byte slice; nil is the empty string.
func (s *String[A]) AssignBytes(b []byte) error {
	return s.AssignView(ViewOfBytes(b))
}

// AssignCString assigns from a NUL-terminated byte pointer. A nil
// pointer yields the empty string and is never dereferenced.
func (s *String[A]) AssignCString(p *byte) error {
	return s.AssignView(ViewOfCString(p))
}

// AssignView is the core path every other assignment reduces to.
func (s *String[A]) AssignView(v View) error {
	buf := s.raw()
	n := copy(buf[:len(buf)-1], v.b)
	buf[n] = 0
	if n < len(v.b) {
		return ErrTruncated
	}
	return nil
}

// Reset zeroes the whole buffer, not just the first byte.
func (s *String[A]) Reset() {
	var zero A
	s.data = zero
}

// IsEmpty reports whether the first byte is the terminator. O(1).
func (s String[A]) IsEmpty() bool { return s.raw()[0] == 0 }

// Len is the content length in bytes, terminator excluded. It scans
// the buffer, so hot loops should cache the result.
func (s String[A]) Len() int { return len(s.content()) }

// Cap is the total buffer capacity in bytes, terminator included.
func (s String[A]) Cap() int { return capOf[A]() }

// View borrows the current content without copying. The view is only
// valid while s is alive and unmodified.
func (s *String[A]) View() View { return View{s.content()} }

// String copies the content into an owned Go string. This is the
// allocating path; prefer View for read-only access.
func (s String[A]) String() string { return string(s.content()) }

// WriteTo streams the content into w without an intermediate copy.
func (s *String[A]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.content())
	return int64(n), err
}

// EqualString reports content equality against a Go string.
func (s String[A]) EqualString(o string) bool { return s.EqualView(ViewOf(o)) }

// EqualView reports content equality against a borrowed view.
func (s String[A]) EqualView(v View) bool { return bytes.Equal(s.content(), v.b) }
