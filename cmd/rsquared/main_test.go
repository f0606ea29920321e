package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {

	path := filepath.Join(t.TempDir(), "output", "svr_plot.png")

	var buf bytes.Buffer
	err := run(&buf, path)
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "R-Squared Analysis for Non-Linear Models")
	assert.Contains(t, out, "Sample Data:")
	assert.Contains(t, out, "R-Squared Components:")
	assert.Contains(t, out, "SST (Total Sum of Squares):      22.000000")
	// the whole point of the demonstration
	assert.Contains(t, out, "✗ SST ≠ SSE + SSR")
	assert.Contains(t, out, "Plot saved to: "+path)

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.True(t, info.Size() > 0)

}
