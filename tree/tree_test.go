package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// voteTree tests Vote1 and then, for Yea votes, Vote2.
func voteTree() Node {
	vote2 := NewDecisionNode("Vote2", 1)
	vote2.AddChild("Yea", NewLeafNode("D", 1.0))
	vote2.AddChild("Nay", NewLeafNode("R", 0.75))
	root := NewDecisionNode("Vote1", 0)
	root.AddChild("Yea", vote2)
	root.AddChild("Nay", NewLeafNode("R", 1.0))
	return root
}

func TestClassify(t *testing.T) {
	root := voteTree()
	class, p, err := Classify(root, []string{"Yea", "Nay", "D"})
	require.NoError(t, err)
	assert.Equal(t, "R", class)
	assert.Equal(t, 0.75, p)

	class, p, err = Classify(root, []string{"Nay"})
	require.NoError(t, err)
	assert.Equal(t, "R", class)
	assert.Equal(t, 1.0, p)
}

func TestClassifyIsRepeatable(t *testing.T) {
	root := voteTree()
	sample := []string{"Yea", "Yea"}
	class1, p1, err1 := Classify(root, sample)
	class2, p2, err2 := Classify(root, sample)
	assert.Equal(t, class1, class2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, err1, err2)
	assert.Equal(t, Render(voteTree()), Render(root))
}

func TestClassifyUnknownCategory(t *testing.T) {
	_, _, err := Classify(voteTree(), []string{"Abstain", "Yea"})
	var uce *UnknownCategoryError
	require.ErrorAs(t, err, &uce)
	assert.Equal(t, "Vote1", uce.Feature)
	assert.Equal(t, "Abstain", uce.Value)
	assert.False(t, uce.Missing)

	_, _, err = Classify(voteTree(), []string{"Yea"})
	require.ErrorAs(t, err, &uce)
	assert.Equal(t, "Vote2", uce.Feature)
	assert.True(t, uce.Missing)
}

func TestClassifyWithoutTree(t *testing.T) {
	_, _, err := Classify(nil, []string{"Yea"})
	assert.Equal(t, ErrCannotPredictWithoutTree, err)
}

func TestClassifyLeafRoot(t *testing.T) {
	class, p, err := Classify(NewLeafNode("", 0), nil)
	require.NoError(t, err)
	assert.Equal(t, "", class)
	assert.Equal(t, 0.0, p)
}

func TestRender(t *testing.T) {
	expected := "\ttest: Vote1\n" +
		"\t\tVote1=Nay ->\n" +
		"\t\tpredicted class: R (1)\n" +
		"\t\tVote1=Yea ->\n" +
		"\t\ttest: Vote2\n" +
		"\t\t\tVote2=Nay ->\n" +
		"\t\t\tpredicted class: R (0.75)\n" +
		"\t\t\tVote2=Yea ->\n" +
		"\t\t\tpredicted class: D (1)\n"
	assert.Equal(t, expected, Render(voteTree()))
	assert.Equal(t, "<empty>", Render(nil))
}

func TestTraverse(t *testing.T) {
	var visited []string
	var depths []int
	Traverse(voteTree(), func(n Node, depth int) {
		switch node := n.(type) {
		case *DecisionNode:
			visited = append(visited, node.FeatureName)
		case *LeafNode:
			visited = append(visited, node.Class)
		}
		depths = append(depths, depth)
	})
	assert.Equal(t, []string{"Vote1", "R", "Vote2", "R", "D"}, visited)
	assert.Equal(t, []int{0, 1, 1, 2, 2}, depths)
}

func TestClassifyFuncAsksOnlyTestedFeatures(t *testing.T) {
	var asked []string
	class, p, err := ClassifyFunc(voteTree(), func(name string, index int) (string, error) {
		asked = append(asked, name)
		return "Nay", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "R", class)
	assert.Equal(t, 1.0, p)
	assert.Equal(t, []string{"Vote1"}, asked)

	_, _, err = ClassifyFunc(voteTree(), func(string, int) (string, error) {
		return "", ErrCannotPredictWithoutTree
	})
	assert.Equal(t, ErrCannotPredictWithoutTree, err)
}
