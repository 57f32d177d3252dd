package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		Infof(context.Background(), "no logger yet %d", 1)
	})
}

func TestInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "info.log")
	Init(&LogConfig{
		Path:       path,
		LogLevel:   "debug",
		ServiceEnv: ServiceEnv{Platform: "tripal", Service: "blast", Env: "test"},
	})
	Infof(context.Background(), "seeded node %d", 7)
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "seeded node 7")
	assert.Contains(t, string(data), `"service":"blast"`)
}
