package tree

/*
Node is a node of a decision tree. It is either a *DecisionNode, which tests
a feature of the sample to choose the subtree to continue with, or a
*LeafNode, which holds a prediction. No other implementations exist.
*/
type Node interface {
	node()
}

/*
DecisionNode is an internal node of the tree: it tests the value of a
feature and holds a subtree for every value the feature took on the
training data.
*/
type DecisionNode struct {
	// The name of the feature tested on this node
	FeatureName string
	// The position of the tested feature's value on records
	FeatureIndex int
	// The subtree for every value of the tested feature
	Children map[string]Node
}

/*
LeafNode is a terminal node of the tree, holding the predicted class and the
proportion of that class among the training samples that reached it.
*/
type LeafNode struct {
	Class       string
	Probability float64
}

/*
NewDecisionNode takes the name and position of a feature and returns a
DecisionNode testing it without any subtree.
*/
func NewDecisionNode(featureName string, featureIndex int) *DecisionNode {
	return &DecisionNode{
		FeatureName:  featureName,
		FeatureIndex: featureIndex,
		Children:     make(map[string]Node),
	}
}

// NewLeafNode returns a LeafNode predicting the given class.
func NewLeafNode(class string, probability float64) *LeafNode {
	return &LeafNode{class, probability}
}

/*
AddChild takes a value of the tested feature and a subtree and sets it as
the subtree for samples with that value.
*/
func (dn *DecisionNode) AddChild(value string, subtree Node) {
	dn.Children[value] = subtree
}

func (*DecisionNode) node() {}

func (*LeafNode) node() {}

/*
Traverse takes a node and a function and calls the function with every node
of the subtree rooted on it, parents before their children and children in
value order. The depth of the given node is 0.
*/
func Traverse(n Node, f func(n Node, depth int)) {
	traverse(n, 0, f)
}

func traverse(n Node, depth int, f func(Node, int)) {
	if n == nil {
		return
	}
	f(n, depth)
	if dn, ok := n.(*DecisionNode); ok {
		for _, v := range dn.values() {
			traverse(dn.Children[v], depth+1, f)
		}
	}
}
