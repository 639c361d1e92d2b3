package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	decisiontree "github.com/chardzhong/Congress-Decision-Tree"
)

type testCmdConfig struct {
	*learnCmdConfig
	testInput string
	testTable string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{learnCmdConfig: &learnCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree from a training set and test its performance against a test data set`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.resolve(cmd)
			if err == nil {
				err = config.Validate()
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			trainingData, err := config.trainingSource().read(ctx, config.logger())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			testSource := &dataSource{location: config.testInput, table: config.testTable, columns: config.columns()}
			testData, err := testSource.read(ctx, config.logger())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			t := decisiontree.New(trainingData)
			err = t.Learn(config.label, config.minExamples, config.learnOptions()...)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(4)
			}
			config.Logf("%v", t)
			config.Logf("Testing tree against testset with %d samples...", testData.Len())
			e, err := t.Test(testData)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(5)
			}
			config.Logf("Done: %d of %d samples predicted correctly, failed to make a prediction for %d samples", e.Correct, e.Total, e.Unclassified)
			fmt.Println(e)
		},
	}
	config.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.testInput), "test-input", "t", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to test the tree against (required)")
	cmd.PersistentFlags().StringVar(&(config.testTable), "test-table", defaultTable, "name of the table holding the test data on SQL databases")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.testInput == "" {
		return fmt.Errorf("required test-input flag was not set")
	}
	return nil
}
