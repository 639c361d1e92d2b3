/*
Package yaml provides methods to parse the metadata describing how a tree
is to be grown, also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"
)

/*
Metadata holds the settings for growing and testing a tree that can be
provided in a YAML document instead of on the command line:

	label: Party
	minExamples: 2
	imputation:
	  values: [Yea, Nay]
	columns: [Vote1, Vote2, Party]
*/
type Metadata struct {
	// Label is the name of the feature to predict
	Label string `yaml:"label"`
	// MinExamples is the minimum number of samples every subset of
	// a split must have. Nil when not specified.
	MinExamples *int `yaml:"minExamples"`
	// Imputation holds the two values an imputed feature may take
	Imputation struct {
		Values []string `yaml:"values"`
	} `yaml:"imputation"`
	// Columns is the list of feature names for sources that do not carry
	// a header, and the column order for destinations.
	Columns []string `yaml:"columns"`
}

/*
ReadMetadata takes a slice of bytes with a metadata document in YAML and
returns the Metadata parsed from it or an error.
*/
func ReadMetadata(md []byte) (*Metadata, error) {
	metadata := &Metadata{}
	err := yaml.Unmarshal(md, metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	if n := len(metadata.Imputation.Values); n != 0 && n != 2 {
		return nil, fmt.Errorf("imputation expects exactly 2 values, got %d", n)
	}
	if metadata.MinExamples != nil && *metadata.MinExamples < 0 {
		return nil, fmt.Errorf("minExamples cannot be negative, got %d", *metadata.MinExamples)
	}
	return metadata, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the Metadata or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadMetadataFromFile(filepath string) (*Metadata, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata yml file %s: %v", filepath, err)
	}
	metadata, err := ReadMetadata(md)
	if err != nil {
		err = fmt.Errorf("parsing metadata yml file %s: %v", filepath, err)
	}
	return metadata, err
}

// ImputationValues returns the two imputation values, or ok=false when the
// metadata does not define them.
func (m *Metadata) ImputationValues() (a, b string, ok bool) {
	if len(m.Imputation.Values) != 2 {
		return "", "", false
	}
	return m.Imputation.Values[0], m.Imputation.Values[1], true
}
