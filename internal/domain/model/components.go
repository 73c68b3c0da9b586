package model

// Career component keys in output order.
const (
	ComponentImpact      = "impact"
	ComponentStage       = "stage"
	ComponentLongevity   = "longevity"
	ComponentVersatility = "versatility"
	ComponentCulture     = "culture"
)

// Recent-form component keys in output order.
const (
	ComponentProduction   = "production"
	ComponentAvailability = "availability"
)

// CareerKeys lists the career components in output order.
var CareerKeys = []string{
	ComponentImpact,
	ComponentStage,
	ComponentLongevity,
	ComponentVersatility,
	ComponentCulture,
}

// RecentKeys lists the recent-form components in output order.
var RecentKeys = []string{
	ComponentProduction,
	ComponentImpact,
	ComponentAvailability,
}

// CareerComponents holds the five career values, raw or scaled.
type CareerComponents struct {
	Impact      float64 `json:"impact"`
	Stage       float64 `json:"stage"`
	Longevity   float64 `json:"longevity"`
	Versatility float64 `json:"versatility"`
	Culture     float64 `json:"culture"`
}

// Values returns the components ordered like CareerKeys.
func (c CareerComponents) Values() []float64 {
	return []float64{c.Impact, c.Stage, c.Longevity, c.Versatility, c.Culture}
}

// CareerComponentsFrom builds components from values ordered like CareerKeys.
func CareerComponentsFrom(v []float64) CareerComponents {
	var c CareerComponents
	if len(v) != len(CareerKeys) {
		return c
	}
	c.Impact, c.Stage, c.Longevity, c.Versatility, c.Culture = v[0], v[1], v[2], v[3], v[4]
	return c
}

// Sum adds the five components.
func (c CareerComponents) Sum() float64 {
	return c.Impact + c.Stage + c.Longevity + c.Versatility + c.Culture
}

// RecentComponents holds the three recent-form values.
type RecentComponents struct {
	Production   float64 `json:"production"`
	Impact       float64 `json:"impact"`
	Availability float64 `json:"availability"`
}

// Values returns the components ordered like RecentKeys.
func (c RecentComponents) Values() []float64 {
	return []float64{c.Production, c.Impact, c.Availability}
}
