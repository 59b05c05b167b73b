package fixedstr

import "gopkg.in/yaml.v3"

// MarshalText implements encoding.TextMarshaler. The output is a
// detached copy of the content.
func (s String[A]) MarshalText() ([]byte, error) {
	return append([]byte(nil), s.content()...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Oversized input
// is kept as a truncated prefix and reported as ErrTruncated.
func (s *String[A]) UnmarshalText(b []byte) error {
	return s.AssignBytes(b)
}

// MarshalYAML implements yaml.Marshaler. yaml.v3 does not consult
// TextMarshaler, so the yaml interfaces are implemented directly.
func (s String[A]) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *String[A]) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return err
	}
	return s.Assign(str)
}
