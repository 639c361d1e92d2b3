/*
Package inputsample provides a sample whose values are read from an
io.Reader as they are needed to classify it.
*/
package inputsample

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chardzhong/Congress-Decision-Tree/feature"
)

/*
FeatureValueRequester represents a way to ask
for feature values and reject the given values.
*/
type FeatureValueRequester interface {
	RequestValueFor(*feature.Feature) error
	RejectValueFor(*feature.Feature, string) error
}

/*
Sample represents a sample whose feature values
are retrieved from a reader. A feature value will be
requested using a FeatureValueRequester before reading it.
*/
type Sample struct {
	obtainedValues        map[int]string
	scanner               *bufio.Scanner
	featureValueRequester FeatureValueRequester
	features              []*feature.Feature
}

/*
New takes an io.Reader, a slice of features and a FeatureValueRequester
and returns a Sample.

The returned Sample ValueFor method reads feature values first
requesting them with the given FeatureValueRequester and
then parsing the values from the reader.

The parsing expects each value to be presented ending with the
'\n' character, that is in new lines. Lines will be read from the
reader until a line with a valid value for the feature is found.
Non accepted values will be rejected with the FeatureValueRequester's
RejectValueFor method.
*/
func New(r io.Reader, features []*feature.Feature, featureValueRequester FeatureValueRequester) *Sample {
	return &Sample{make(map[int]string), bufio.NewScanner(r), featureValueRequester, features}
}

/*
ValueFor takes the name and position of a feature and returns the value of
the sample for it, reading it if it has not been read yet. It returns an
error if the sample has no information about the feature or the reader
ends before a valid value is given.
*/
func (s *Sample) ValueFor(name string, index int) (string, error) {
	if value, ok := s.obtainedValues[index]; ok {
		return value, nil
	}
	if index < 0 || index >= len(s.features) || s.features[index].Name() != name {
		return "", fmt.Errorf("have no information about feature %s, do not know how to read its value", name)
	}
	f := s.features[index]
	err := s.featureValueRequester.RequestValueFor(f)
	if err != nil {
		return "", err
	}
	for s.scanner.Scan() {
		line := s.scanner.Text()
		if f.Valid(line) == nil {
			s.obtainedValues[index] = line
			return line, nil
		}
		err = s.featureValueRequester.RejectValueFor(f, line)
		if err != nil {
			return "", err
		}
	}
	err = s.scanner.Err()
	if err != nil {
		return "", err
	}
	return "", fmt.Errorf("EOF when requesting value for %s", name)
}
