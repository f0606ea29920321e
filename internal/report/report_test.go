package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"rsquared/internal/model"
)

func TestBanner(t *testing.T) {

	var plain bytes.Buffer
	Banner(&plain, "")
	assert.Equal(t, strings.Repeat("=", 60)+"\n", plain.String())

	var titled bytes.Buffer
	Banner(&titled, "Analysis")
	lines := strings.Split(titled.String(), "\n")
	assert.Equal(t, strings.Repeat("=", 60), lines[0])
	assert.Equal(t, "Analysis", lines[1])
	assert.Equal(t, strings.Repeat("=", 60), lines[2])

}

func TestWrite(t *testing.T) {

	type test struct {
		stats    model.Stats
		contains []string
		excludes []string
	}

	tests := map[string]test{
		"holds": {
			stats: model.Stats{SSE: 18, SSR: 4, SST: 22},
			contains: []string{
				"SST (Total Sum of Squares):      22.000000",
				"SSE (Error Sum of Squares):      18.000000",
				"SSR (Regression Sum of Squares): 4.000000",
				"SSE + SSR = 22.000000",
				"✓ SST = SSE + SSR (Linear relationship holds)",
			},
			excludes: []string{"✗"},
		},
		"fails": {
			stats: model.Stats{SSE: 18, SSR: 4, SST: 22 + 1e-6},
			contains: []string{
				"✗ SST ≠ SSE + SSR (Difference: 0.000001)",
				"R² should NOT be used",
			},
			excludes: []string{"✓"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			Write(&buf, tt.stats)
			out := buf.String()
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}

}
