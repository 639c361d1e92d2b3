package dataset

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

/*
UndefinedEntropy is the value Entropy returns for a set of records on which
some value of the label domain does not appear at all.
*/
const UndefinedEntropy = -1.0

/*
Proportion takes a slice of records, a feature position and a value and
returns the fraction of the records that have that value for the feature.
The proportion on an empty slice of records is 0.
*/
func Proportion(records []Record, col int, value string) float64 {
	if len(records) == 0 {
		return 0.0
	}
	var count int
	for _, r := range records {
		if r[col] == value {
			count++
		}
	}
	return float64(count) / float64(len(records))
}

/*
Proportions takes a slice of records, a feature position and the domain of
that feature and returns the proportion of every value in the domain, in
domain order.
*/
func Proportions(records []Record, col int, domain []string) []float64 {
	result := make([]float64, len(domain))
	for i, v := range domain {
		result[i] = Proportion(records, col, v)
	}
	return result
}

/*
Entropy takes a slice of records, the position of the label feature and the
label's domain and returns the entropy of the records for the label: a
measure of the disinformation we have on the classes of the records.

As soon as a value of the domain has a proportion of 0 on the records,
UndefinedEntropy is returned instead: this is also the case for an empty
slice of records. An empty domain has an entropy of 0.
*/
func Entropy(records []Record, col int, domain []string) float64 {
	var result float64
	for _, v := range domain {
		p := Proportion(records, col, v)
		if p == 0 {
			return UndefinedEntropy
		}
		result -= p * math.Log(p)
	}
	return result
}

/*
InformationGain takes a parent slice of records, the position of the label
feature, the label's domain and the slices of records the parent is split
into, and returns the entropy of the parent minus the entropy of every child
weighted by its share of the parent's records. An empty parent gives no
weight to its children.
*/
func InformationGain(parent []Record, col int, domain []string, children [][]Record) float64 {
	result := Entropy(parent, col, domain)
	if len(parent) == 0 {
		return result
	}
	total := float64(len(parent))
	weighted := make([]float64, len(children))
	for i, child := range children {
		weighted[i] = float64(len(child)) / total * Entropy(child, col, domain)
	}
	return result - floats.Sum(weighted)
}
