package decisiontree

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/chardzhong/Congress-Decision-Tree/dataset"
	"github.com/chardzhong/Congress-Decision-Tree/tree"
)

/*
Evaluation holds the result of testing a tree against a dataset: the number
of records whose label was predicted correctly, the number of records that
could not be classified because of values unknown to the tree, and the total
number of records.
*/
type Evaluation struct {
	Correct      int
	Unclassified int
	Total        int
}

/*
Accuracy returns the fraction of the tested records whose label was
predicted correctly, rounded to 16 decimal places. Unclassified records count
as failures. An evaluation over no records has an accuracy of 0.
*/
func (e *Evaluation) Accuracy() decimal.Decimal {
	if e.Total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(e.Correct)).DivRound(decimal.NewFromInt(int64(e.Total)), 16)
}

func (e *Evaluation) String() string {
	return fmt.Sprintf("Accuracy %s", e.Accuracy())
}

/*
Test takes a dataset with the label and every feature of the training data,
possibly in a different column order, and classifies its records to return
an Evaluation of the tree's predictions.

The test data is imputed in place with the majority values of its own
records before being classified. Records with values the tree does not know
are counted as unclassified. It returns ErrNotGrown if the tree has not been
grown, or an error if the test data lacks a feature of the training data.
*/
func (t *Tree) Test(testData *dataset.Dataset) (*Evaluation, error) {
	if t.root == nil {
		return nil, ErrNotGrown
	}
	_, err := t.trimmer.Trim(testData, t.label.Name())
	if err != nil {
		return nil, fmt.Errorf("imputing test data: %v", err)
	}
	aligned, err := testData.Realign(t.data.Header())
	if err != nil {
		return nil, fmt.Errorf("aligning test data with training data: %v", err)
	}
	e := &Evaluation{Total: aligned.Len()}
	for _, r := range aligned.Records() {
		class, _, err := tree.Classify(t.root, r)
		if err != nil {
			if _, ok := err.(*tree.UnknownCategoryError); ok {
				e.Unclassified++
				continue
			}
			return nil, err
		}
		if class == r[t.label.Index()] {
			e.Correct++
		}
	}
	return e, nil
}
