package feature

import (
	"fmt"
	"sort"
)

/*
Feature represents a categorical attribute of the samples: a named column
at a fixed position of every record, that can only take a value among a
finite set observed on the training data.
*/
type Feature struct {
	name            string
	index           int
	availableValues []string
}

/*
UnknownFeatureError is returned when a feature is referenced by a name
that is not part of a header.
*/
type UnknownFeatureError struct {
	Name string
}

func (e *UnknownFeatureError) Error() string {
	return fmt.Sprintf("unknown feature %q", e.Name)
}

/*
NewFeature takes a name string, the position of the feature on records and
a slice of available value strings and returns a feature with them. The
available values are copied and sorted so that iterating over them is
deterministic.
*/
func NewFeature(name string, index int, availableValues []string) *Feature {
	values := append([]string{}, availableValues...)
	sort.Strings(values)
	return &Feature{name, index, values}
}

/*
Name returns a string with the name of the feature
*/
func (f *Feature) Name() string {
	return f.name
}

/*
Index returns the position of the feature's value on records
*/
func (f *Feature) Index() int {
	return f.index
}

/*
AvailableValues returns a string slice with the values available for the
feature, sorted lexicographically.
*/
func (f *Feature) AvailableValues() []string {
	return f.availableValues
}

/*
Valid receives a value and returns nil when it is included in the available
values of the feature, or an error describing why it is not otherwise.
*/
func (f *Feature) Valid(value string) error {
	i := sort.SearchStrings(f.availableValues, value)
	if i < len(f.availableValues) && f.availableValues[i] == value {
		return nil
	}
	return fmt.Errorf("feature %s got unknown value %q", f.name, value)
}

func (f *Feature) String() string {
	return f.name
}
