package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type setCmdConfig struct {
	*rootCmdConfig
	setInput      string
	inputTable    string
	metadataInput string
	setOutput     string
	outputTable   string
	columns       []string
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Manage sets of data",
		Long:  `Copy a set of data from a CSV file, SQLite3 file, PostgreSQL DB or MongoDB DB to another`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.load()
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
			n, err := output.write(ctx, config.logger(), data)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			config.Logf("Done: %d samples written", n)
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.setInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVar(&(config.inputTable), "input-table", defaultTable, "name of the table holding the input set on SQL databases")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the columns of the set (required for MongoDB inputs)")
	cmd.PersistentFlags().StringVarP(&(config.setOutput), "output", "o", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to dump the output set (defaults to STDOUT in CSV)")
	cmd.PersistentFlags().StringVar(&(config.outputTable), "output-table", defaultTable, "name of the table to dump the output set to on SQL databases")
	cmd.AddCommand(splitCmd(config))
	return cmd
}

func (scc *setCmdConfig) load() error {
	md, err := loadMetadata(scc.metadataInput, scc.logger())
	if err != nil {
		return err
	}
	scc.columns = md.Columns
	return scc.Validate()
}

func (scc *setCmdConfig) Validate() error {
	if kindOf(scc.setInput) == mongoDBSource && len(scc.columns) == 0 {
		return fmt.Errorf("metadata with columns is required to read from MongoDB")
	}
	return nil
}

func (scc *setCmdConfig) sources() (input, output *dataSource) {
	input = &dataSource{location: scc.setInput, table: scc.inputTable, columns: scc.columns}
	output = &dataSource{location: scc.setOutput, table: scc.outputTable, columns: scc.columns}
	return
}
