package static_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/bundle-pricing/internal/discount"
	"github.com/noah-isme/bundle-pricing/internal/pricing"
	"github.com/noah-isme/bundle-pricing/internal/static"
)

func gamingBundle() static.Bundle[static.Item[discount.None], discount.Percent] {
	return static.NewBundle("Gaming Bundle", []static.Item[discount.None]{
		static.NewItem("Laptop", 15000, discount.None{}),
		static.NewItem("Gaming Mouse", 1200, discount.None{}),
		static.NewItem("Mechanical Keyboard", 800, discount.None{}),
	}, discount.NewPercent(15))
}

func TestItemTotalAppliesPolicy(t *testing.T) {
	require.Equal(t, 1200.0, static.NewItem("Mouse", 1200, discount.None{}).TotalPrice())
	require.Equal(t, discount.NewPercent(15).Apply(1200), static.NewItem("Mouse", 1200, discount.NewPercent(15)).TotalPrice())
	require.Zero(t, static.NewItem("Mouse", 1200, discount.NewFixed(5000)).TotalPrice())
}

func TestBundleScenario(t *testing.T) {
	bundle := gamingBundle()
	require.InDelta(t, 14450.0, bundle.TotalPrice(), pricing.Tolerance)

	fixed := static.WithBundlePolicy(bundle, discount.NewFixed(3000))
	require.InDelta(t, 14000.0, fixed.TotalPrice(), pricing.Tolerance)

	floored := static.WithBundlePolicy(bundle, discount.NewFixed(20000))
	require.Zero(t, floored.TotalPrice())
}

func TestSwapLeavesOriginalValueUntouched(t *testing.T) {
	bundle := gamingBundle()
	copyOfOld := bundle

	var swapped static.Bundle[static.Item[discount.None], discount.Fixed] = static.WithBundlePolicy(bundle, discount.NewFixed(3000))

	require.Equal(t, discount.NewPercent(15), bundle.Policy())
	require.Equal(t, discount.NewPercent(15), copyOfOld.Policy())
	require.Equal(t, discount.NewFixed(3000), swapped.Policy())
	require.InDelta(t, 14450.0, copyOfOld.TotalPrice(), pricing.Tolerance)
	require.Len(t, swapped.Children(), 3)
}

func TestItemSwapRetypes(t *testing.T) {
	item := static.NewItem("Laptop", 15000, discount.None{})
	var discounted static.Item[discount.Percent] = static.WithItemPolicy(item, discount.NewPercent(20))

	require.Equal(t, 15000.0, item.TotalPrice())
	require.InDelta(t, 12000.0, discounted.TotalPrice(), pricing.Tolerance)
	require.Equal(t, "Laptop", discounted.Name())
	require.Equal(t, 15000.0, discounted.BasePrice())
}

func TestEmptyBundle(t *testing.T) {
	bundle := static.NewBundle[static.Item[discount.None]]("Empty", nil, discount.NewPercent(15))
	require.Zero(t, bundle.TotalPrice())
	require.Empty(t, bundle.Children())
}

func TestAddReturnsNewValue(t *testing.T) {
	bundle := gamingBundle()
	grown := bundle.Add(static.NewItem("Headset", 1000, discount.None{}))

	require.Len(t, bundle.Children(), 3)
	require.Len(t, grown.Children(), 4)
	require.InDelta(t, 18000*0.85, grown.TotalPrice(), pricing.Tolerance)
	require.InDelta(t, 14450.0, bundle.TotalPrice(), pricing.Tolerance)
}

func TestNewBundleOwnsChildren(t *testing.T) {
	items := []static.Item[discount.None]{static.NewItem("a", 1, discount.None{})}
	bundle := static.NewBundle("b", items, discount.None{})
	items[0] = static.NewItem("a", 1000, discount.None{})
	require.Equal(t, 1.0, bundle.TotalPrice())
}

func TestNestedBundlesAreDistinctTypes(t *testing.T) {
	inner := gamingBundle()
	outer := static.NewBundle("Setup",
		[]static.Bundle[static.Item[discount.None], discount.Percent]{inner, inner},
		discount.NewFixed(450))

	require.InDelta(t, 2*14450.0-450, outer.TotalPrice(), pricing.Tolerance)

	swappedOuter := static.WithBundlePolicy(outer, discount.None{})
	require.InDelta(t, 2*14450.0, swappedOuter.TotalPrice(), pricing.Tolerance)
}

func TestRenderDepths(t *testing.T) {
	inner := static.NewBundle("Inner", []static.Item[discount.None]{static.NewItem("Deep", 20, discount.None{})}, discount.NewFixed(5))
	outer := static.NewBundle("Outer", []static.Bundle[static.Item[discount.None], discount.Fixed]{inner}, discount.None{})

	lines := strings.Split(strings.TrimSuffix(pricing.Tree(outer), "\n"), "\n")
	require.Equal(t, []string{
		"Bundle: Outer | Total: 15.00₺ | Strategy: No Discount",
		"--Bundle: Inner | Total: 15.00₺ | Strategy: Fixed Discount",
		"----Product: Deep | Price: 20.00₺ | Strategy: No Discount",
	}, lines)
}
