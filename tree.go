/*
Package decisiontree grows categorical decision trees from labeled tabular
data by choosing, at every node, the feature whose partition of the node's
records has the highest information gain to predict the label.
*/
package decisiontree

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/chardzhong/Congress-Decision-Tree/dataset"
	"github.com/chardzhong/Congress-Decision-Tree/feature"
	"github.com/chardzhong/Congress-Decision-Tree/tree"
)

// LearnError represents an error related with the growth of a tree
type LearnError string

const (
	// ErrNotGrown is returned when a tree is used before Learn has been called on it
	ErrNotGrown = LearnError("tree has not been grown yet")
	// ErrAlreadyGrown is returned when Learn is called on a tree more than once
	ErrAlreadyGrown = LearnError("tree has already been grown")
)

func (le LearnError) Error() string {
	return string(le)
}

/*
Tree owns a training dataset and the root of the decision tree grown from
it. It is empty until Learn is called, and read-only afterwards.
*/
type Tree struct {
	data    *dataset.Dataset
	label   *feature.Feature
	root    tree.Node
	trimmer *dataset.Trimmer
}

/*
Load takes the names of the features and the rows of training data and
returns an empty Tree for them, or an error if they do not make a valid
dataset.
*/
func Load(header []string, rows [][]string) (*Tree, error) {
	ds, err := dataset.New(header, rows)
	if err != nil {
		return nil, fmt.Errorf("loading training data: %v", err)
	}
	return New(ds), nil
}

// New returns an empty Tree to be grown from the given dataset.
func New(ds *dataset.Dataset) *Tree {
	return &Tree{data: ds}
}

/*
Learn takes the name of the label feature, a minimum number of records and
options, imputes the training data and grows the tree to predict the label.

Non-label features are expected to take one of two values. Any other value
is replaced on the training data by the most frequent of those two values
for its feature before growing. Then the feature for every split is chosen
among those not used above it, and a split is only considered if every
subset it produces has at least minExamples records.

It returns an *feature.UnknownFeatureError if the data has no label with
the given name, ErrAlreadyGrown if the tree has already been grown and an
error if minExamples is negative.
*/
func (t *Tree) Learn(label string, minExamples int, opts ...Option) error {
	if t.root != nil {
		return ErrAlreadyGrown
	}
	if minExamples < 0 {
		return fmt.Errorf("minimum number of examples must not be negative, got %d", minExamples)
	}
	if _, err := t.data.Header().Index(label); err != nil {
		return err
	}
	lc := newLearnConfig(opts)
	replaced, err := lc.trimmer.Trim(t.data, label)
	if err != nil {
		return fmt.Errorf("imputing training data: %v", err)
	}
	lc.logger.Logf("Imputed %d values of the training data", replaced)
	labelFeature, err := t.data.Feature(label)
	if err != nil {
		return err
	}
	pruner := NoPruner()
	if minExamples > 0 {
		pruner = MinimumExamplesPruner(minExamples)
	}
	g := &grower{
		label:            labelFeature,
		features:         t.data.Features(),
		pruner:           pruner,
		sharedFeatureUse: lc.sharedFeatureUse,
		logger:           lc.logger,
	}
	t.root = g.grow(t.data.Records(), hashset.New(), 0)
	t.label = labelFeature
	t.trimmer = lc.trimmer
	return nil
}

/*
Classify takes the values of a record, in the order of the training data's
header, and returns the class predicted for it and its probability. It
returns ErrNotGrown if the tree has not been grown, and an
*tree.UnknownCategoryError if the record has a value for a tested feature
that was not on the training data.
*/
func (t *Tree) Classify(record []string) (string, float64, error) {
	if t.root == nil {
		return "", 0.0, ErrNotGrown
	}
	return tree.Classify(t.root, record)
}

// Root returns the root node of the tree, nil if it has not been grown.
func (t *Tree) Root() tree.Node {
	return t.root
}

// Label returns the label feature the tree predicts, nil if it has not been grown.
func (t *Tree) Label() *feature.Feature {
	return t.label
}

// Data returns the training dataset of the tree.
func (t *Tree) Data() *dataset.Dataset {
	return t.data
}

/*
Stats returns the number of nodes and leaves of the tree and its depth,
counting the root as depth 0.
*/
func (t *Tree) Stats() (nodes, leaves, depth int) {
	tree.Traverse(t.root, func(n tree.Node, d int) {
		nodes++
		if _, ok := n.(*tree.LeafNode); ok {
			leaves++
		}
		if d > depth {
			depth = d
		}
	})
	return
}

func (t *Tree) String() string {
	return tree.Render(t.root)
}
