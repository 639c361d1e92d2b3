package feature

import "fmt"

/*
Criterion represents a constraint on a feature: a value it must take.
*/
type Criterion struct {
	feature *Feature
	value   string
}

/*
NewCriterion takes a Feature and one of its values and returns a Criterion
for the records that have that value for the feature.
*/
func NewCriterion(feature *Feature, value string) *Criterion {
	return &Criterion{feature, value}
}

/*
Feature returns the feature to which the constraint applies.
*/
func (c *Criterion) Feature() *Feature {
	return c.feature
}

// Value returns the value to which the feature is constrained.
func (c *Criterion) Value() string {
	return c.value
}

func (c *Criterion) String() string {
	return fmt.Sprintf("%s=%s", c.feature.Name(), c.value)
}
