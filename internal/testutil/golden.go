package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Golden compares output against testdata/<name>.golden.
// If the GOLDEN_UPDATE environment variable is set, rewrites the golden file instead.
func Golden(t *testing.T, name string, got string) {
	t.Helper()

	goldenPath := filepath.Join("testdata", name+".golden")

	if os.Getenv("GOLDEN_UPDATE") != "" {
		require.NoError(t, os.MkdirAll("testdata", 0755), "create testdata dir")
		require.NoError(t, os.WriteFile(goldenPath, []byte(got), 0644), "update golden file")
		return
	}

	want, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "read golden file %s\nGot:\n%s", goldenPath, got)

	assert.Equal(t, string(want), got, "output mismatch for %s", name)
}
