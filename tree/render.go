package tree

import (
	"sort"
	"strconv"
	"strings"
)

/*
Render takes a node and returns a human-readable outline of the tree rooted
on it. Every decision node is rendered as a "test:" line followed, for every
value of the tested feature in lexicographical order, by a "feature=value ->"
line and the rendering of the subtree one tab deeper. Leaves are rendered as
a "predicted class:" line with their probability. A nil node renders as
"<empty>".
*/
func Render(n Node) string {
	if n == nil {
		return "<empty>"
	}
	var b strings.Builder
	render(&b, n, 0)
	return b.String()
}

func render(b *strings.Builder, n Node, level int) {
	prefix := strings.Repeat("\t", level+1)
	switch node := n.(type) {
	case *DecisionNode:
		b.WriteString(prefix + "test: " + node.FeatureName + "\n")
		for _, v := range node.values() {
			b.WriteString(prefix + "\t" + node.FeatureName + "=" + v + " ->\n")
			render(b, node.Children[v], level+1)
		}
	case *LeafNode:
		b.WriteString(prefix + "predicted class: " + node.Class + " (" + strconv.FormatFloat(node.Probability, 'f', -1, 64) + ")\n")
	}
}

func (dn *DecisionNode) values() []string {
	values := make([]string, 0, len(dn.Children))
	for v := range dn.Children {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
