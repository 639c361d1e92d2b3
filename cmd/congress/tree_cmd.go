package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chardzhong/Congress-Decision-Tree/tree/redisstore"
)

const redisTreePrefix = "congress:trees"

type treeCmdConfig struct {
	*rootCmdConfig
	redisURL string
	redisKey string
	delete   bool
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show a published tree",
		Long:  `Show the outline of a tree published on redis by the grow command, optionally deleting it`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			config.Logf("Connecting to redis at %s...", config.redisURL)
			rc, err := redisstore.Dial(config.redisURL)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			defer rc.Close()
			store := redisstore.New(rc, redisTreePrefix)
			outline, err := store.Get(ctx, config.redisKey)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			if outline == "" {
				fmt.Fprintf(os.Stderr, "no tree published as %s\n", config.redisKey)
				os.Exit(4)
			}
			fmt.Print(outline)
			if config.delete {
				err = store.Delete(ctx, config.redisKey)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(5)
				}
				config.Logf("Tree %s deleted", config.redisKey)
			}
		},
	}
	cmd.Flags().StringVar(&(config.redisURL), "redis-url", "", "URL of the redis DB the tree was published to, as redis://[:password@]host[:port][/db] (required)")
	cmd.Flags().StringVar(&(config.redisKey), "redis-key", "", "name under which the tree was published (required)")
	cmd.Flags().BoolVar(&(config.delete), "delete", false, "delete the tree after showing it")
	return cmd
}

func (tcc *treeCmdConfig) Validate() error {
	if tcc.redisURL == "" {
		return fmt.Errorf("required redis-url flag was not set")
	}
	if tcc.redisKey == "" {
		return fmt.Errorf("required redis-key flag was not set")
	}
	return nil
}
