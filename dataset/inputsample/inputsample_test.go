package inputsample

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chardzhong/Congress-Decision-Tree/feature"
)

type recordingRequester struct {
	requested []string
	rejected  []string
}

func (rr *recordingRequester) RequestValueFor(f *feature.Feature) error {
	rr.requested = append(rr.requested, f.Name())
	return nil
}

func (rr *recordingRequester) RejectValueFor(f *feature.Feature, v string) error {
	rr.rejected = append(rr.rejected, fmt.Sprintf("%s=%s", f.Name(), v))
	return nil
}

func features() []*feature.Feature {
	return []*feature.Feature{
		feature.NewFeature("Vote1", 0, []string{"Yea", "Nay"}),
		feature.NewFeature("Vote2", 1, []string{"Yea", "Nay"}),
	}
}

func TestValueFor(t *testing.T) {
	rr := &recordingRequester{}
	s := New(strings.NewReader("Abstain\nNay\nYea\n"), features(), rr)

	v, err := s.ValueFor("Vote2", 1)
	require.NoError(t, err)
	assert.Equal(t, "Nay", v)
	assert.Equal(t, []string{"Vote2"}, rr.requested)
	assert.Equal(t, []string{"Vote2=Abstain"}, rr.rejected)

	v, err = s.ValueFor("Vote2", 1)
	require.NoError(t, err)
	assert.Equal(t, "Nay", v)
	assert.Equal(t, []string{"Vote2"}, rr.requested)

	v, err = s.ValueFor("Vote1", 0)
	require.NoError(t, err)
	assert.Equal(t, "Yea", v)
}

func TestValueForErrors(t *testing.T) {
	s := New(strings.NewReader("Abstain\n"), features(), &recordingRequester{})
	_, err := s.ValueFor("Vote3", 2)
	assert.Error(t, err)
	_, err = s.ValueFor("Vote2", 0)
	assert.Error(t, err)
	_, err = s.ValueFor("Vote1", 0)
	assert.Error(t, err)
}
