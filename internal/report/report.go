package report

import (
	"fmt"
	"io"
	"strings"

	"rsquared/internal/model"
)

const width = 60

// Banner writes a separator line, and the given title framed by another
// separator when one is provided.
func Banner(w io.Writer, title string) {
	line := strings.Repeat("=", width)
	fmt.Fprintln(w, line)
	if title != "" {
		fmt.Fprintln(w, title)
		fmt.Fprintln(w, line)
		fmt.Fprintln(w)
	}
}

// Write formats the sum of squares components, their sum and the verdict
// on the decomposition identity.
func Write(w io.Writer, stats model.Stats) {
	fmt.Fprintln(w, "R-Squared Components:")
	fmt.Fprintf(w, "  SST (Total Sum of Squares):      %.6f\n", stats.SST)
	fmt.Fprintf(w, "  SSE (Error Sum of Squares):      %.6f\n", stats.SSE)
	fmt.Fprintf(w, "  SSR (Regression Sum of Squares): %.6f\n", stats.SSR)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  SSE + SSR = %.6f\n", stats.Sum())
	fmt.Fprintln(w)

	if stats.Decomposes(model.Tolerance) {
		fmt.Fprintln(w, "✓ SST = SSE + SSR (Linear relationship holds)")
		return
	}

	fmt.Fprintf(w, "✗ SST ≠ SSE + SSR (Difference: %.6f)\n", stats.Gap())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "This demonstrates that R² should NOT be used for")
	fmt.Fprintln(w, "non-linear models, as the fundamental property")
	fmt.Fprintln(w, "SST = SSE + SSR does not hold!")
}
