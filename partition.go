package decisiontree

import (
	"github.com/chardzhong/Congress-Decision-Tree/dataset"
	"github.com/chardzhong/Congress-Decision-Tree/feature"
)

/*
Partition represents a partition of a set of records according to a feature
into one subset per value of the feature's domain, with the information gain
it achieves to predict the label feature.
*/
type Partition struct {
	Feature         *feature.Feature
	Subsets         []*Subset
	informationGain float64
}

/*
Subset is the part of a partitioned set of records that satisfies a
criterion on the partition's feature.
*/
type Subset struct {
	Criterion *feature.Criterion
	Records   []dataset.Record
}

/*
NewPartition takes a slice of records, a feature and a label feature and
returns the partition of the records over every available value of the
feature, including values no record takes, along with its information gain
to predict the label.
*/
func NewPartition(records []dataset.Record, f *feature.Feature, label *feature.Feature) *Partition {
	values := f.AvailableValues()
	children := dataset.Partition(records, f.Index(), values)
	subsets := make([]*Subset, len(values))
	for i, v := range values {
		subsets[i] = &Subset{feature.NewCriterion(f, v), children[i]}
	}
	informationGain := dataset.InformationGain(records, label.Index(), label.AvailableValues(), children)
	return &Partition{f, subsets, informationGain}
}

// InformationGain returns the information gain of the partition.
func (p *Partition) InformationGain() float64 {
	return p.informationGain
}

// SmallestSubset returns the number of records of the partition's smallest subset.
func (p *Partition) SmallestSubset() int {
	smallest := -1
	for _, s := range p.Subsets {
		if smallest < 0 || len(s.Records) < smallest {
			smallest = len(s.Records)
		}
	}
	return smallest
}
