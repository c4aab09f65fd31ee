// Package dynamic prices bundles through interface dispatch. Nodes are held by
// pointer and a policy swap mutates the node in place, so every holder of the
// same *Item or *Bundle observes it immediately.
//
// Trees are single-writer: nothing here is safe for concurrent mutation.
package dynamic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/noah-isme/bundle-pricing/internal/discount"
	"github.com/noah-isme/bundle-pricing/internal/pricing"
)

// Component is the capability set shared by leaves and bundles.
type Component interface {
	pricing.Renderer
	Name() string
	TotalPrice() float64
	Policy() discount.Policy
	SetPolicy(p discount.Policy)
}

func policyOrNone(p discount.Policy) discount.Policy {
	if p == nil {
		return discount.None{}
	}
	return p
}

// ErrCycle is returned by Add when a child already contains the bundle.
var ErrCycle = errors.New("dynamic: bundle cannot contain itself")

// Item is a leaf with a base price.
type Item struct {
	name   string
	price  float64
	policy discount.Policy
}

// NewItem builds a leaf. A nil policy means no discount.
func NewItem(name string, price float64, policy discount.Policy) *Item {
	return &Item{name: name, price: price, policy: policyOrNone(policy)}
}

func (i *Item) Name() string                { return i.name }
func (i *Item) BasePrice() float64          { return i.price }
func (i *Item) Policy() discount.Policy     { return i.policy }
func (i *Item) SetPolicy(p discount.Policy) { i.policy = policyOrNone(p) }

// TotalPrice applies the item's policy to its base price.
func (i *Item) TotalPrice() float64 {
	return i.policy.Apply(i.price)
}

func (i *Item) Render(b *strings.Builder, depth int) {
	b.WriteString(pricing.FormatItem(depth, i.name, i.TotalPrice(), i.policy.Name()))
}

// Bundle owns an ordered list of components and discounts their sum once.
type Bundle struct {
	name     string
	children []Component
	policy   discount.Policy
}

// NewBundle builds a composite holding children in the given order.
func NewBundle(name string, policy discount.Policy, children ...Component) *Bundle {
	b := &Bundle{name: name, policy: policyOrNone(policy)}
	// b is new, so no child can reach it.
	_ = b.Add(children...)
	return b
}

// Add appends children; nil entries are ignored. If any child is b or has b
// somewhere below it, nothing is added and ErrCycle is returned.
func (b *Bundle) Add(children ...Component) error {
	for _, c := range children {
		if c != nil && reaches(c, b) {
			return fmt.Errorf("add %q to %q: %w", c.Name(), b.name, ErrCycle)
		}
	}
	for _, c := range children {
		if c == nil {
			continue
		}
		b.children = append(b.children, c)
	}
	return nil
}

// reaches reports whether target is c itself or one of its descendants.
func reaches(c Component, target *Bundle) bool {
	switch n := c.(type) {
	case *Bundle:
		if n == target {
			return true
		}
		for _, child := range n.children {
			if reaches(child, target) {
				return true
			}
		}
	case *Observable:
		return reaches(n.Component, target)
	}
	return false
}

// Children returns a copy of the child list.
func (b *Bundle) Children() []Component {
	out := make([]Component, len(b.children))
	copy(out, b.children)
	return out
}

func (b *Bundle) Name() string                { return b.name }
func (b *Bundle) Policy() discount.Policy     { return b.policy }
func (b *Bundle) SetPolicy(p discount.Policy) { b.policy = policyOrNone(p) }

// TotalPrice sums the children's own totals and applies the bundle policy to
// the result. An empty bundle prices the policy applied to zero.
func (b *Bundle) TotalPrice() float64 {
	return b.policy.Apply(pricing.Sum(b.children, Component.TotalPrice))
}

func (b *Bundle) Render(sb *strings.Builder, depth int) {
	sb.WriteString(pricing.FormatBundle(depth, b.name, b.TotalPrice(), b.policy.Name()))
	for _, c := range b.children {
		c.Render(sb, depth+pricing.DepthStep)
	}
}
