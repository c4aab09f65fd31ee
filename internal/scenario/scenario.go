// Package scenario builds the reference bundles shared by the demo command,
// the cross-variant tests and the benchmarks.
package scenario

import (
	"fmt"

	"github.com/noah-isme/bundle-pricing/internal/discount"
	"github.com/noah-isme/bundle-pricing/internal/dynamic"
	"github.com/noah-isme/bundle-pricing/internal/static"
)

// BundleRate is the percentage applied to every reference bundle.
const BundleRate = 15

// Line is one leaf of a reference bundle.
type Line struct {
	Name  string
	Price float64
}

// GamingLines returns the leaves of the gaming bundle.
func GamingLines() []Line {
	return []Line{
		{Name: "Laptop", Price: 15000},
		{Name: "Gaming Mouse", Price: 1200},
		{Name: "Mechanical Keyboard", Price: 800},
	}
}

// LargeLines returns n leaves priced (i+1)*100.
func LargeLines(n int) []Line {
	out := make([]Line, n)
	for i := range out {
		out[i] = Line{Name: fmt.Sprintf("Product %d", i), Price: float64(i+1) * 100}
	}
	return out
}

// StaticBundle is the concrete type of every static reference bundle.
type StaticBundle = static.Bundle[static.Item[discount.None], discount.Percent]

// Dynamic assembles lines into a heap-allocated bundle.
func Dynamic(name string, lines []Line) *dynamic.Bundle {
	b := dynamic.NewBundle(name, discount.NewPercent(BundleRate))
	for _, l := range lines {
		_ = b.Add(dynamic.NewItem(l.Name, l.Price, discount.None{}))
	}
	return b
}

// Static assembles lines into a generic bundle value.
func Static(name string, lines []Line) StaticBundle {
	items := make([]static.Item[discount.None], len(lines))
	for i, l := range lines {
		items[i] = static.NewItem(l.Name, l.Price, discount.None{})
	}
	return static.NewBundle(name, items, discount.NewPercent(BundleRate))
}

// GamingDynamic is the gaming bundle in the dynamic variant.
func GamingDynamic() *dynamic.Bundle { return Dynamic("Gaming Bundle", GamingLines()) }

// GamingStatic is the gaming bundle in the static variant.
func GamingStatic() StaticBundle { return Static("Gaming Bundle", GamingLines()) }

// LargeDynamic is the n-leaf benchmark bundle in the dynamic variant.
func LargeDynamic(n int) *dynamic.Bundle { return Dynamic("Gaming Bundle", LargeLines(n)) }

// LargeStatic is the n-leaf benchmark bundle in the static variant.
func LargeStatic(n int) StaticBundle { return Static("Gaming Bundle", LargeLines(n)) }
