package decisiontree

import (
	"math"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/chardzhong/Congress-Decision-Tree/dataset"
	"github.com/chardzhong/Congress-Decision-Tree/feature"
	"github.com/chardzhong/Congress-Decision-Tree/tree"
)

type grower struct {
	label            *feature.Feature
	features         []*feature.Feature
	pruner           Pruner
	sharedFeatureUse bool
	logger           Logger
}

/*
grow takes a slice of records, the set of positions of the features that
cannot be used to split them and the depth of the node to grow, and returns
the subtree for the records.

Every feature that is neither the label nor used is considered in header
order. The one whose partition has the highest information gain is chosen
as long as the gain is over 0 and the pruner does not discard the partition.
Later features must exceed the gain of the current best to replace it.
*/
func (g *grower) grow(records []dataset.Record, used *hashset.Set, depth int) tree.Node {
	var selected *Partition
	var bestGain float64
	for _, f := range g.features {
		if f.Index() == g.label.Index() || used.Contains(f.Index()) {
			continue
		}
		p := NewPartition(records, f, g.label)
		gain := p.InformationGain()
		if g.pruner.Prune(p) {
			gain = math.Inf(-1)
		}
		if gain > bestGain {
			selected = p
			bestGain = gain
		}
	}
	indent := strings.Repeat("  ", depth)
	if selected == nil {
		leaf := g.leaf(records)
		g.logger.Logf("%sleaf: %s (%v) over %d records", indent, leaf.Class, leaf.Probability, len(records))
		return leaf
	}
	g.logger.Logf("%ssplit: %s with information gain %v over %d records", indent, selected.Feature.Name(), bestGain, len(records))
	if !g.sharedFeatureUse {
		used = hashset.New(used.Values()...)
	}
	used.Add(selected.Feature.Index())
	dn := tree.NewDecisionNode(selected.Feature.Name(), selected.Feature.Index())
	for _, s := range selected.Subsets {
		g.logger.Logf("%s%s", indent, s.Criterion)
		dn.AddChild(s.Criterion.Value(), g.grow(s.Records, used, depth+1))
	}
	return dn
}

/*
leaf returns a leaf predicting the label value with the highest proportion
on the given records. Ties go to the value that comes first on the label's
domain. An empty slice of records gets a leaf with an empty class and a
probability of 0.
*/
func (g *grower) leaf(records []dataset.Record) *tree.LeafNode {
	var class string
	var probability float64
	for _, v := range g.label.AvailableValues() {
		if p := dataset.Proportion(records, g.label.Index(), v); p > probability {
			class = v
			probability = p
		}
	}
	return tree.NewLeafNode(class, probability)
}
