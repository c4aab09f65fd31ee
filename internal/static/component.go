// Package static prices bundles through generics. A node's policy is part of
// its type, so swapping a policy returns a new value of a different type and
// leaves the original untouched.
package static

import (
	"strings"

	"github.com/noah-isme/bundle-pricing/internal/discount"
	"github.com/noah-isme/bundle-pricing/internal/pricing"
)

// Component is the constraint every bundle child satisfies.
type Component interface {
	pricing.Renderer
	TotalPrice() float64
}

// Item is a leaf priced with policy type P.
type Item[P discount.Policy] struct {
	name   string
	price  float64
	policy P
}

// NewItem builds a leaf value.
func NewItem[P discount.Policy](name string, price float64, policy P) Item[P] {
	return Item[P]{name: name, price: price, policy: policy}
}

func (i Item[P]) Name() string       { return i.name }
func (i Item[P]) BasePrice() float64 { return i.price }
func (i Item[P]) Policy() P          { return i.policy }

// TotalPrice applies the item's policy to its base price.
func (i Item[P]) TotalPrice() float64 {
	return i.policy.Apply(i.price)
}

func (i Item[P]) Render(b *strings.Builder, depth int) {
	b.WriteString(pricing.FormatItem(depth, i.name, i.TotalPrice(), i.policy.Name()))
}

// WithItemPolicy consumes item and returns a copy retyped to policy Q.
func WithItemPolicy[P, Q discount.Policy](item Item[P], policy Q) Item[Q] {
	return Item[Q]{name: item.name, price: item.price, policy: policy}
}

// Bundle holds children of the single concrete type C and discounts their sum
// with policy type P. Heterogeneous trees nest bundles, each level its own type.
type Bundle[C Component, P discount.Policy] struct {
	name     string
	children []C
	policy   P
}

// NewBundle builds a bundle value owning a copy of children.
func NewBundle[C Component, P discount.Policy](name string, children []C, policy P) Bundle[C, P] {
	owned := make([]C, len(children))
	copy(owned, children)
	return Bundle[C, P]{name: name, children: owned, policy: policy}
}

func (b Bundle[C, P]) Name() string { return b.name }
func (b Bundle[C, P]) Policy() P    { return b.policy }

// Children returns a copy of the child list.
func (b Bundle[C, P]) Children() []C {
	out := make([]C, len(b.children))
	copy(out, b.children)
	return out
}

// Add returns a new bundle with children appended. b itself is unchanged.
func (b Bundle[C, P]) Add(children ...C) Bundle[C, P] {
	next := make([]C, 0, len(b.children)+len(children))
	next = append(next, b.children...)
	next = append(next, children...)
	return Bundle[C, P]{name: b.name, children: next, policy: b.policy}
}

// TotalPrice sums the children's own totals and applies the bundle policy to
// the result. An empty bundle prices the policy applied to zero.
func (b Bundle[C, P]) TotalPrice() float64 {
	return b.policy.Apply(pricing.Sum(b.children, func(c C) float64 { return c.TotalPrice() }))
}

func (b Bundle[C, P]) Render(sb *strings.Builder, depth int) {
	sb.WriteString(pricing.FormatBundle(depth, b.name, b.TotalPrice(), b.policy.Name()))
	for _, c := range b.children {
		c.Render(sb, depth+pricing.DepthStep)
	}
}

// WithBundlePolicy consumes bundle and returns it retyped to policy Q. The
// children are carried over as is; only the bundle's own policy changes.
func WithBundlePolicy[C Component, P, Q discount.Policy](bundle Bundle[C, P], policy Q) Bundle[C, Q] {
	return Bundle[C, Q]{name: bundle.name, children: bundle.children, policy: policy}
}
