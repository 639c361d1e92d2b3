package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chardzhong/Congress-Decision-Tree/dataset"
)

type splitCmdConfig struct {
	*setCmdConfig
	splitOutput      string
	splitTable       string
	splitProbability int
}

func splitCmd(setConfig *setCmdConfig) *cobra.Command {
	config := &splitCmdConfig{setCmdConfig: setConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set into two sets",
		Long:  `Split a set into an output set and a split set, to grow a tree with the first and test it with the second`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.load()
			if err == nil {
				err = config.Validate()
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			input, output := config.sources()
			data, err := input.read(ctx, config.logger())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			randomizer := rand.New(rand.NewSource(time.Now().UnixNano()))
			kept, split, err := splitDataset(data, config.splitProbability, randomizer)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			_, err = output.write(ctx, config.logger(), kept)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			splitOutput := &dataSource{location: config.splitOutput, table: config.splitTable, columns: config.columns}
			_, err = splitOutput.write(ctx, config.logger(), split)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			config.Logf("Input set with %d samples was split into sets with %d and %d samples", data.Len(), kept.Len(), split.Len())
		},
	}
	cmd.Flags().IntVarP(&(config.splitProbability), "split-probability", "p", 20, "probability as percent integer that a sample of the set will be assigned to the split set")
	cmd.Flags().StringVarP(&(config.splitOutput), "split-output", "s", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to dump the split set (required)")
	cmd.Flags().StringVar(&(config.splitTable), "split-table", defaultTable, "name of the table to dump the split set to on SQL databases")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if scc.splitOutput == "" {
		return fmt.Errorf("required split-output flag was not set")
	}
	if scc.splitOutput == scc.setOutput && scc.splitTable == scc.outputTable {
		return fmt.Errorf("split-output must differ from output")
	}
	if scc.splitProbability < 0 || scc.splitProbability > 100 {
		return fmt.Errorf("split-probability must be between 0 and 100, got %d", scc.splitProbability)
	}
	return nil
}

/*
splitDataset takes a dataset, a percent probability and a randomizer and
assigns every record of the dataset to the split dataset with that
probability, and to the kept dataset otherwise.
*/
func splitDataset(data *dataset.Dataset, probability int, randomizer *rand.Rand) (kept, split *dataset.Dataset, err error) {
	var keptRows, splitRows [][]string
	for _, r := range data.Records() {
		if (100 * randomizer.Float32()) >= float32(probability) {
			keptRows = append(keptRows, r)
		} else {
			splitRows = append(splitRows, r)
		}
	}
	kept, err = dataset.NewWithHeader(data.Header(), keptRows)
	if err != nil {
		return nil, nil, err
	}
	split, err = dataset.NewWithHeader(data.Header(), splitRows)
	if err != nil {
		return nil, nil, err
	}
	return kept, split, nil
}
