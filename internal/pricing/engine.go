package pricing

import (
	"fmt"
	"math"
	"strings"
)

const (
	// DepthStep is the indentation added per nesting level when rendering.
	DepthStep = 2
	// IndentMarker is repeated depth times in front of each rendered line.
	IndentMarker = "-"
	// Currency is appended to every rendered amount.
	Currency = "₺"
	// Tolerance bounds the float drift accepted between dispatch variants.
	Tolerance = 1e-9
)

// Renderer writes a node and its descendants starting at depth.
type Renderer interface {
	Render(b *strings.Builder, depth int)
}

// Sum totals children in insertion order using the supplied price function.
func Sum[T any](children []T, price func(T) float64) float64 {
	var total float64
	for _, c := range children {
		total += price(c)
	}
	return total
}

// FormatItem returns the display line of a leaf.
func FormatItem(depth int, name string, total float64, policy string) string {
	return formatLine(depth, "Product", name, "Price", total, policy)
}

// FormatBundle returns the display line of a composite.
func FormatBundle(depth int, name string, total float64, policy string) string {
	return formatLine(depth, "Bundle", name, "Total", total, policy)
}

func formatLine(depth int, kind, name, totalLabel string, total float64, policy string) string {
	if depth < 0 {
		depth = 0
	}
	return fmt.Sprintf("%s%s: %s | %s: %.2f%s | Strategy: %s\n",
		strings.Repeat(IndentMarker, depth), kind, name, totalLabel, total, Currency, policy)
}

// Tree renders r from the root.
func Tree(r Renderer) string {
	var b strings.Builder
	r.Render(&b, 0)
	return b.String()
}

// ApproxEqual reports whether a and b agree within Tolerance.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance
}
