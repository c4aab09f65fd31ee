package discount

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies the family a policy belongs to.
type Kind string

const (
	KindNone    Kind = "none"
	KindPercent Kind = "percent"
	KindFixed   Kind = "fixed"
)

// Policy transforms a price into its discounted value.
type Policy interface {
	Apply(price float64) float64
	Name() string
	Kind() Kind
}

// None leaves prices untouched.
type None struct{}

func (None) Apply(price float64) float64 { return price }
func (None) Name() string                { return "No Discount" }
func (None) Kind() Kind                  { return KindNone }

// Percent takes Rate percent off the price. Rates outside [0, 100] are not
// rejected: a negative rate raises the price and a rate above 100 makes it negative.
type Percent struct {
	Rate float64
}

// NewPercent returns a percentage policy for the given rate.
func NewPercent(rate float64) Percent {
	return Percent{Rate: rate}
}

func (p Percent) Apply(price float64) float64 { return price * (1 - p.Rate/100) }
func (Percent) Name() string                  { return "Percentage Discount" }
func (Percent) Kind() Kind                    { return KindPercent }

// Fixed subtracts Amount from the price, never going below zero.
type Fixed struct {
	Amount float64
}

// NewFixed returns a fixed amount policy.
func NewFixed(amount float64) Fixed {
	return Fixed{Amount: amount}
}

func (f Fixed) Apply(price float64) float64 { return math.Max(0, price-f.Amount) }
func (Fixed) Name() string                  { return "Fixed Discount" }
func (Fixed) Kind() Kind                    { return KindFixed }

// Describe renders the policy with its parameter, e.g. "Percentage Discount (percent:15)".
func Describe(p Policy) string {
	if p == nil {
		return "<nil>"
	}
	switch v := p.(type) {
	case Percent:
		return fmt.Sprintf("%s (%s:%s)", v.Name(), v.Kind(), formatParam(v.Rate))
	case *Percent:
		return Describe(*v)
	case Fixed:
		return fmt.Sprintf("%s (%s:%s)", v.Name(), v.Kind(), formatParam(v.Amount))
	case *Fixed:
		return Describe(*v)
	default:
		return fmt.Sprintf("%s (%s)", p.Name(), p.Kind())
	}
}

func formatParam(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
