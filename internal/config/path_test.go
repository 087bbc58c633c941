package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain path", in: "/var/lib/wonflow.db", want: "/var/lib/wonflow.db"},
		{name: "tilde only", in: "~", want: home},
		{name: "tilde prefix", in: "~/data/ledger.db", want: filepath.Join(home, "data", "ledger.db")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestExpandPath_EnvVars(t *testing.T) {
	t.Setenv("WONFLOW_TEST_DIR", "/srv/ledger")

	assert.Equal(t, "/srv/ledger/wonflow.db", ExpandPath("$WONFLOW_TEST_DIR/wonflow.db"))
}

func TestDefaultStorePath(t *testing.T) {
	path := DefaultStorePath()
	assert.Contains(t, path, "wonflow")
}
