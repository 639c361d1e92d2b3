package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const metadataYML = `label: Party
minExamples: 2
imputation:
  values: [Y, N]
columns: [Vote1, Party]
`

func writeMetadata(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "metadata.yml")
	require.NoError(t, ioutil.WriteFile(path, []byte(metadataYML), 0644))
	return path
}

func TestResolveUsesMetadata(t *testing.T) {
	cmd := &cobra.Command{}
	config := &learnCmdConfig{rootCmdConfig: &rootCmdConfig{}}
	config.addFlags(cmd)
	config.metadataInput = writeMetadata(t)
	require.NoError(t, config.resolve(cmd))
	assert.Equal(t, "Party", config.label)
	assert.Equal(t, 2, config.minExamples)
	assert.Equal(t, []string{"Y", "N"}, config.imputation)
	assert.Equal(t, []string{"Vote1", "Party"}, config.columns())
	assert.Len(t, config.learnOptions(), 2)
}

func TestResolveFlagsOverrideMetadata(t *testing.T) {
	cmd := &cobra.Command{}
	config := &learnCmdConfig{rootCmdConfig: &rootCmdConfig{}}
	config.addFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{
		"--metadata", writeMetadata(t),
		"--label", "Faction",
		"--min-examples", "0",
		"--imputation", "Aye,No",
		"--shared-feature-use",
	}))
	require.NoError(t, config.resolve(cmd))
	assert.Equal(t, "Faction", config.label)
	assert.Equal(t, 0, config.minExamples)
	assert.Equal(t, []string{"Aye", "No"}, config.imputation)
	assert.Len(t, config.learnOptions(), 3)
}

func TestLearnCmdConfigValidate(t *testing.T) {
	assert.Error(t, (&learnCmdConfig{}).Validate())
	assert.Error(t, (&learnCmdConfig{label: "Party", minExamples: -1}).Validate())
	assert.Error(t, (&learnCmdConfig{label: "Party", imputation: []string{"Yea"}}).Validate())
	assert.NoError(t, (&learnCmdConfig{label: "Party"}).Validate())
}

func TestTrimmer(t *testing.T) {
	config := &trimCmdConfig{learnCmdConfig: &learnCmdConfig{}}
	assert.Equal(t, "Yea", config.trimmer().A)
	config.imputation = []string{"Y", "N"}
	assert.Equal(t, "Y", config.trimmer().A)
	assert.Equal(t, "N", config.trimmer().B)
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "congress v0.1.0", version())
}

func TestTreeCmdConfigValidate(t *testing.T) {
	assert.Error(t, (&treeCmdConfig{redisKey: "house"}).Validate())
	assert.Error(t, (&treeCmdConfig{redisURL: "redis://localhost"}).Validate())
	assert.NoError(t, (&treeCmdConfig{redisURL: "redis://localhost", redisKey: "house"}).Validate())
}

func TestCommands(t *testing.T) {
	var names []string
	for _, c := range cliParser().Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"version", "grow", "test", "predict", "tree", "trim", "set"}, names)
}
