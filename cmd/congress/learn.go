package main

import (
	"fmt"

	"github.com/spf13/cobra"

	decisiontree "github.com/chardzhong/Congress-Decision-Tree"
	"github.com/chardzhong/Congress-Decision-Tree/feature/yaml"
)

/*
learnCmdConfig holds the settings shared by the commands that grow a tree.
Settings given as flags override those in the metadata file.
*/
type learnCmdConfig struct {
	*rootCmdConfig
	dataInput        string
	table            string
	metadataInput    string
	label            string
	minExamples      int
	imputation       []string
	sharedFeatureUse bool
	metadata         *yaml.Metadata
}

func (lcc *learnCmdConfig) addFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&(lcc.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVar(&(lcc.table), "table", defaultTable, "name of the table holding the data on SQL databases")
	cmd.PersistentFlags().StringVarP(&(lcc.metadataInput), "metadata", "m", "", "path to a YML file with the label, minimum examples, imputation values and columns to use")
	cmd.PersistentFlags().StringVarP(&(lcc.label), "label", "l", "", "name of the feature the tree should predict (required unless set on metadata)")
	cmd.PersistentFlags().IntVarP(&(lcc.minExamples), "min-examples", "n", 0, "minimum number of samples every subset of a split must have")
	cmd.PersistentFlags().StringSliceVar(&(lcc.imputation), "imputation", nil, "the two values every feature but the label is expected to take, the first one winning ties (defaults to Yea,Nay)")
	cmd.PersistentFlags().BoolVar(&(lcc.sharedFeatureUse), "shared-feature-use", false, "make a feature used on a split unavailable for the rest of the tree, not just below the split")
}

/*
resolve loads the metadata and fills in the settings not given as flags
with its values. It returns an error if the metadata cannot be loaded or the
resulting settings are not valid.
*/
func (lcc *learnCmdConfig) resolve(cmd *cobra.Command) error {
	md, err := loadMetadata(lcc.metadataInput, lcc.logger())
	if err != nil {
		return err
	}
	lcc.metadata = md
	if lcc.label == "" {
		lcc.label = md.Label
	}
	if !cmd.Flags().Changed("min-examples") && md.MinExamples != nil {
		lcc.minExamples = *md.MinExamples
	}
	if len(lcc.imputation) == 0 {
		if a, b, ok := md.ImputationValues(); ok {
			lcc.imputation = []string{a, b}
		}
	}
	return lcc.Validate()
}

func (lcc *learnCmdConfig) Validate() error {
	if lcc.label == "" {
		return fmt.Errorf("required label flag was not set")
	}
	if lcc.minExamples < 0 {
		return fmt.Errorf("min-examples cannot be negative, got %d", lcc.minExamples)
	}
	if n := len(lcc.imputation); n != 0 && n != 2 {
		return fmt.Errorf("imputation expects exactly 2 values, got %d", n)
	}
	return nil
}

func (lcc *learnCmdConfig) columns() []string {
	if lcc.metadata == nil {
		return nil
	}
	return lcc.metadata.Columns
}

func (lcc *learnCmdConfig) trainingSource() *dataSource {
	return &dataSource{location: lcc.dataInput, table: lcc.table, columns: lcc.columns()}
}

func (lcc *learnCmdConfig) learnOptions() []decisiontree.Option {
	opts := []decisiontree.Option{decisiontree.WithLogger(lcc.logger())}
	if len(lcc.imputation) == 2 {
		opts = append(opts, decisiontree.WithImputationValues(lcc.imputation[0], lcc.imputation[1]))
	}
	if lcc.sharedFeatureUse {
		opts = append(opts, decisiontree.WithSharedFeatureUse())
	}
	return opts
}
