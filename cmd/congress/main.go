package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose bool
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "congress",
		Short: "congress is a tool to grow decision trees from votes",
		Long:  `A tool to grow decision trees that predict the party of congress members from their votes, test them, and prepare the data for them`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "")
	rootCmd.AddCommand(versionCmd(), growCmd(config), testCmd(config), predictCmd(config), treeCmd(config), trimCmd(config), setCmd(config))
	return rootCmd
}
