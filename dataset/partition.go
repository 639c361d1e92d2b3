package dataset

/*
Split takes a slice of records, a feature position and a value and returns
the records that have that value for the feature, in their original order.
The given slice is not modified.
*/
func Split(records []Record, col int, value string) []Record {
	var result []Record
	for _, r := range records {
		if r[col] == value {
			result = append(result, r)
		}
	}
	return result
}

/*
Partition takes a slice of records, a feature position and the domain of
that feature and returns one Split of the records per domain value, in
domain order. Values that no record has get an empty subset.
*/
func Partition(records []Record, col int, domain []string) [][]Record {
	result := make([][]Record, len(domain))
	for i, v := range domain {
		result[i] = Split(records, col, v)
	}
	return result
}
