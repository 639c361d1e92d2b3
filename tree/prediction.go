package tree

import (
	"fmt"
)

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrCannotPredictWithoutTree is the error returned by Classify when it is
given no node to start from.
*/
const ErrCannotPredictWithoutTree = PredictionError("no tree available to make a prediction")

func (pe PredictionError) Error() string {
	return string(pe)
}

/*
UnknownCategoryError is the error returned by Classify when the sample has a
value for a tested feature that the feature did not take on the training
data, so the tree has no subtree for it. A sample too short to have a value
for the tested feature gets one too, with Missing set.
*/
type UnknownCategoryError struct {
	Feature string
	Value   string
	Missing bool
}

func (e *UnknownCategoryError) Error() string {
	if e.Missing {
		return fmt.Sprintf("sample has no value for feature %s", e.Feature)
	}
	return fmt.Sprintf("sample has unknown value %q for feature %s", e.Value, e.Feature)
}

/*
ValueFunc returns the value of a sample for the feature with the given name
and position, or an error if it cannot be obtained.
*/
type ValueFunc func(name string, index int) (string, error)

/*
Classify takes a node and the values of a sample and walks down the tree from
the node, following on every decision node the subtree for the sample's value
of the tested feature, until it reaches a leaf. It returns the class
predicted by the leaf and its probability, or an *UnknownCategoryError if the
tree has no subtree for a value of the sample. Classify does not modify the
tree.
*/
func Classify(n Node, values []string) (string, float64, error) {
	return ClassifyFunc(n, func(name string, index int) (string, error) {
		if index >= len(values) {
			return "", &UnknownCategoryError{Feature: name, Missing: true}
		}
		return values[index], nil
	})
}

/*
ClassifyFunc works like Classify but obtains the values of the sample from
the given ValueFunc, only for the features tested on the way to the leaf.
Errors returned by the ValueFunc are returned as they are.
*/
func ClassifyFunc(n Node, value ValueFunc) (string, float64, error) {
	for {
		switch node := n.(type) {
		case *LeafNode:
			return node.Class, node.Probability, nil
		case *DecisionNode:
			v, err := value(node.FeatureName, node.FeatureIndex)
			if err != nil {
				return "", 0.0, err
			}
			subtree, ok := node.Children[v]
			if !ok {
				return "", 0.0, &UnknownCategoryError{Feature: node.FeatureName, Value: v}
			}
			n = subtree
		case nil:
			return "", 0.0, ErrCannotPredictWithoutTree
		default:
			panic(fmt.Sprintf("unknown node type %T", n))
		}
	}
}
