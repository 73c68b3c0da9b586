// Package normalize turns raw component values into budgeted points
// relative to the whole scored population.
//
// Normalization is strictly two-phase: Maxima must see every raw row
// before Scale is called for any of them.
package normalize

import (
	"math"

	"github.com/okian/goatboard/internal/domain/model"
)

// Blend weights an internal ratio against an external baseline ratio.
type Blend struct {
	Internal float64
	Baseline float64
}

// Component describes one normalized component.
type Component struct {
	Key    string
	Budget float64
	// Blend is nil for components never blended with a baseline.
	Blend *Blend
}

// Maxima holds the largest raw value per component key.
type Maxima map[string]float64

// Baseline is a player's external component values plus the external
// population maxima they are measured against. The zero value means no
// baseline.
type Baseline struct {
	Values map[string]float64
	Maxima Maxima
}

// CareerComponents are the five career components with their budgets
// (summing to 100) and blend weights.
var CareerComponents = []Component{
	{Key: model.ComponentImpact, Budget: 34, Blend: &Blend{Internal: 0.65, Baseline: 0.35}},
	{Key: model.ComponentStage, Budget: 26, Blend: &Blend{Internal: 0.6, Baseline: 0.4}},
	{Key: model.ComponentLongevity, Budget: 20, Blend: &Blend{Internal: 0.7, Baseline: 0.3}},
	{Key: model.ComponentVersatility, Budget: 12, Blend: &Blend{Internal: 0.55, Baseline: 0.45}},
	{Key: model.ComponentCulture, Budget: 8, Blend: &Blend{Internal: 0.4, Baseline: 0.6}},
}

// RecentComponents are the three recent-form components and weights.
var RecentComponents = []Component{
	{Key: model.ComponentProduction, Budget: 50},
	{Key: model.ComponentImpact, Budget: 30},
	{Key: model.ComponentAvailability, Budget: 20},
}

// Option applies a configuration option to the Normalizer.
type Option func(*Normalizer)

// WithDecimals rounds each scaled component to d decimals. Negative
// disables rounding.
func WithDecimals(d int) Option {
	return func(n *Normalizer) {
		n.decimals = d
	}
}

// Normalizer scales raw rows against population maxima.
type Normalizer struct {
	components []Component
	decimals   int
}

// New creates a Normalizer. Rows passed to it must be ordered like components.
func New(components []Component, opts ...Option) *Normalizer {
	n := &Normalizer{
		components: components,
		decimals:   -1,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// NewCareer is the career normalizer: blended, rounded to 2 decimals.
func NewCareer() *Normalizer {
	return New(CareerComponents, WithDecimals(2))
}

// NewRecent is the recent-form normalizer: unblended and unrounded.
func NewRecent() *Normalizer {
	return New(RecentComponents)
}

// Components returns the configured components.
func (n *Normalizer) Components() []Component {
	return n.components
}

// Maxima computes the per-component maximum over every row. Negative
// raw values never raise a maximum above 0.
func (n *Normalizer) Maxima(rows [][]float64) Maxima {
	out := make(Maxima, len(n.components))
	for _, c := range n.components {
		out[c.Key] = 0
	}
	for _, row := range rows {
		for i, c := range n.components {
			if i >= len(row) {
				break
			}
			if v := row[i]; v > out[c.Key] {
				out[c.Key] = v
			}
		}
	}
	return out
}

// Ratio is clamp(raw/max, 0, 1), 0 when max is not positive.
func Ratio(raw, maxValue float64) float64 {
	if maxValue <= 0 || math.IsNaN(raw) {
		return 0
	}
	return clamp01(raw / maxValue)
}

// Scale converts one raw row into budgeted points.
func (n *Normalizer) Scale(raw []float64, maxima Maxima, base Baseline) []float64 {
	out := make([]float64, len(n.components))
	for i, c := range n.components {
		var v float64
		if i < len(raw) {
			v = raw[i]
		}
		combined := Ratio(v, maxima[c.Key])

		if c.Blend != nil {
			if bv, ok := base.Values[c.Key]; ok {
				if bmax := base.Maxima[c.Key]; bmax > 0 {
					combined = c.Blend.Internal*combined + c.Blend.Baseline*Ratio(bv, bmax)
				}
			}
		}

		out[i] = n.round(c.Budget * clamp01(combined))
	}
	return out
}

func (n *Normalizer) round(v float64) float64 {
	if n.decimals < 0 {
		return v
	}
	return Round(v, n.decimals)
}

// Round rounds half away from zero to d decimals.
func Round(v float64, d int) float64 {
	p := math.Pow10(d)
	return math.Round(v*p) / p
}

// Sum adds scaled components.
func Sum(values []float64) float64 {
	var s float64
	for _, v := range values {
		s += v
	}
	return s
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
