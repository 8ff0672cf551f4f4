package environment

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFromString(t *testing.T) {
	require.Equal(t, Development, FromString("dev"))
	require.Equal(t, Production, FromString("prod"))
	require.Equal(t, Unknown, FromString("staging"))
	require.Equal(t, Unknown, FromString(""))
}

func TestString_RoundTrip(t *testing.T) {
	for _, e := range []Env{Development, Production} {
		require.Equal(t, e, FromString(e.String()))
	}
	require.Equal(t, "unknown", Unknown.String())
}

func TestUnmarshalYAML(t *testing.T) {
	var cfg struct {
		Environment Env `yaml:"environment"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("environment: prod"), &cfg))
	require.Equal(t, Production, cfg.Environment)
}
