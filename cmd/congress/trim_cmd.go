package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chardzhong/Congress-Decision-Tree/dataset"
)

type trimCmdConfig struct {
	*learnCmdConfig
	output      string
	outputTable string
}

func trimCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &trimCmdConfig{learnCmdConfig: &learnCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "trim",
		Short: "Impute a set of data",
		Long:  `Replace the values of every feature but the label that are not one of the two expected values with the most frequent of them, and dump the resulting set`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.resolve(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			data, err := config.trainingSource().read(ctx, config.logger())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			replaced, err := config.trimmer().Trim(data, config.label)
			if err != nil {
				fmt.Fprintf(os.Stderr, "imputing set: %v\n", err)
				os.Exit(3)
			}
			config.Logf("Imputed %d values", replaced)
			output := &dataSource{location: config.output, table: config.outputTable, columns: config.columns()}
			n, err := output.write(ctx, config.logger(), data)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Done: %d samples written", n)
		},
	}
	config.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to dump the imputed set (defaults to STDOUT in CSV)")
	cmd.PersistentFlags().StringVar(&(config.outputTable), "output-table", defaultTable, "name of the table to dump the imputed set to on SQL databases")
	return cmd
}

func (tcc *trimCmdConfig) trimmer() *dataset.Trimmer {
	if len(tcc.imputation) == 2 {
		return dataset.NewTrimmer(tcc.imputation[0], tcc.imputation[1])
	}
	return dataset.DefaultTrimmer()
}
