package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	decisiontree "github.com/chardzhong/Congress-Decision-Tree"
)

func TestPredict(t *testing.T) {
	tr, err := decisiontree.Load([]string{"Vote1", "Vote2", "Party"}, [][]string{
		{"Yea", "Yea", "D"},
		{"Nay", "Nay", "R"},
		{"Yea", "Nay", "D"},
		{"Nay", "Yea", "R"},
	})
	require.NoError(t, err)
	require.NoError(t, tr.Learn("Party", 0))

	var out bytes.Buffer
	class, p, err := predict(tr, strings.NewReader("maybe\nYea\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "D", class)
	assert.Equal(t, 1.0, p)
	assert.Equal(t, "Please provide the sample's Vote1:\n(valid values are [Nay Yea])\n"+
		"maybe is not a valid value for the sample's Vote1. Please provide one of [Nay Yea].\n", out.String())
}
