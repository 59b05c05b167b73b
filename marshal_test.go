package fixedstr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type labelDoc struct {
	Name String[[8]byte]  `yaml:"name" json:"name"`
	Zone String[[16]byte] `yaml:"zone" json:"zone"`
}

func TestYAMLRoundTrip(t *testing.T) {
	in := labelDoc{
		Name: MustMake[[8]byte]("edge-a"),
		Zone: MustMake[[16]byte]("eu-west-1"),
	}
	data, err := yaml.Marshal(&in)
	require.NoError(t, err)
	assert.Equal(t, "name: edge-a\nzone: eu-west-1\n", string(data))

	var out labelDoc
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.True(t, Equal(&in.Name, &out.Name))
	assert.True(t, Equal(&in.Zone, &out.Zone))
}

func TestYAMLOversizedValue(t *testing.T) {
	var out labelDoc
	err := yaml.Unmarshal([]byte("name: waytoolongforthis\n"), &out)
	require.Error(t, err)
	require.ErrorContains(t, err, "truncated")
}

func TestJSONRoundTrip(t *testing.T) {
	in := labelDoc{
		Name: MustMake[[8]byte]("pump-a7"),
		Zone: MustMake[[16]byte]("hall-3"),
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"pump-a7","zone":"hall-3"}`, string(data))

	var out labelDoc
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, Equal(&in.Name, &out.Name))
	assert.True(t, Equal(&in.Zone, &out.Zone))
}

func TestJSONOversizedValue(t *testing.T) {
	var out labelDoc
	err := json.Unmarshal([]byte(`{"name":"waytoolongforthis"}`), &out)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestTextRoundTrip(t *testing.T) {
	s := MustMake[[8]byte]("tag")
	data, err := s.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, []byte("tag"), data)

	var out String[[8]byte]
	require.NoError(t, out.UnmarshalText(data))
	assert.True(t, Equal(&s, &out))
}
