package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cmd", "-a", ":9090", "-d", "postgres://u:p@db:5432/x"}

	config := &Config{}
	require.NotPanics(t, func() { parseFlags(config) })

	assert.Equal(t, ":9090", config.EndpointAddr)
	assert.Equal(t, "postgres://u:p@db:5432/x", config.DatabaseDSN)
}
