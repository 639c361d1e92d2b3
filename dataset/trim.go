package dataset

const (
	// DefaultImputationMajorityValue is the first value of the two-value
	// domain expected for imputed features. It wins ties.
	DefaultImputationMajorityValue = "Yea"
	// DefaultImputationMinorityValue is the second value of the two-value
	// domain expected for imputed features.
	DefaultImputationMinorityValue = "Nay"
)

/*
Trimmer imputes the features of a dataset that are expected to take one of
two values, A or B, replacing any other value with the one of them that is
most frequent for that feature. A wins ties.
*/
type Trimmer struct {
	A, B string
}

/*
NewTrimmer takes the two values of the expected feature domain and returns
a Trimmer for them. The first one is preferred on ties.
*/
func NewTrimmer(a, b string) *Trimmer {
	return &Trimmer{a, b}
}

/*
DefaultTrimmer returns a Trimmer for the Yea/Nay domain of legislative votes.
*/
func DefaultTrimmer() *Trimmer {
	return NewTrimmer(DefaultImputationMajorityValue, DefaultImputationMinorityValue)
}

/*
Trim takes a dataset and the name of its label feature and, for every other
feature, replaces in place the values that are neither A nor B with the
majority of those two on the whole column. The majority of a feature is
decided on its values before any of them is replaced, and features are
imputed independently of each other. Domains are recomputed afterwards.

It returns the number of replaced values, or an *feature.UnknownFeatureError
if the dataset has no label feature with the given name. Trimming an already
trimmed dataset replaces nothing.
*/
func (t *Trimmer) Trim(ds *Dataset, label string) (int, error) {
	labelIndex, err := ds.header.Index(label)
	if err != nil {
		return 0, err
	}
	var replaced int
	for col := 0; col < ds.header.Len(); col++ {
		if col == labelIndex {
			continue
		}
		majority := t.majority(ds.records, col)
		for _, r := range ds.records {
			if r[col] != t.A && r[col] != t.B {
				r[col] = majority
				replaced++
			}
		}
	}
	ds.RecomputeDomains()
	return replaced, nil
}

func (t *Trimmer) majority(records []Record, col int) string {
	if Proportion(records, col, t.A) >= Proportion(records, col, t.B) {
		return t.A
	}
	return t.B
}
