package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPreservesOrder(t *testing.T) {
	records := []Record{{"Yea", "1"}, {"Nay", "2"}, {"Yea", "3"}}
	assert.Equal(t, []Record{{"Yea", "1"}, {"Yea", "3"}}, Split(records, 0, "Yea"))
	assert.Equal(t, []Record{{"Yea", "1"}, {"Nay", "2"}, {"Yea", "3"}}, records)
	assert.Empty(t, Split(records, 0, "Abstain"))
}

func TestPartitionFollowsDomain(t *testing.T) {
	records := []Record{{"Yea", "1"}, {"Yea", "2"}}
	children := Partition(records, 0, []string{"Nay", "Yea"})
	assert.Len(t, children, 2)
	assert.Empty(t, children[0])
	assert.Len(t, children[1], 2)
}
