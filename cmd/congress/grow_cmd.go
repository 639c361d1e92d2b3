package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	decisiontree "github.com/chardzhong/Congress-Decision-Tree"
	"github.com/chardzhong/Congress-Decision-Tree/tree/redisstore"
)

type growCmdConfig struct {
	*learnCmdConfig
	output   string
	redisURL string
	redisKey string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{learnCmdConfig: &learnCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a tree from a set of data to predict a certain feature and print its outline.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.resolve(cmd)
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
			config.Logf("Growing tree from a set with %d samples and %d features to predict %s ...", trainingData.Len(), trainingData.Header().Len()-1, config.label)
			t := decisiontree.New(trainingData)
			err = t.Learn(config.label, config.minExamples, config.learnOptions()...)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(3)
			}
			nodes, leaves, depth := t.Stats()
			config.Logf("Done: %d nodes, %d leaves, depth %d", nodes, leaves, depth)
			err = outputTree(config.output, t)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			if config.redisURL != "" {
				name, err := config.publish(ctx, t)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(5)
				}
				config.Logf("Tree outline published as %s", name)
			}
		},
	}
	config.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the outline of the generated tree will be written (defaults to STDOUT)")
	cmd.PersistentFlags().StringVar(&(config.redisURL), "redis-url", "", "URL of a redis DB to publish the outline of the tree to, as redis://[:password@]host[:port][/db]")
	cmd.PersistentFlags().StringVar(&(config.redisKey), "redis-key", "", "name under which the outline is published on redis (defaults to a random one)")
	return cmd
}

func (gcc *growCmdConfig) publish(ctx context.Context, t *decisiontree.Tree) (string, error) {
	gcc.Logf("Connecting to redis at %s...", gcc.redisURL)
	rc, err := redisstore.Dial(gcc.redisURL)
	if err != nil {
		return "", err
	}
	defer rc.Close()
	return redisstore.New(rc, redisTreePrefix).Store(ctx, gcc.redisKey, t.String())
}

func outputTree(outputPath string, t *decisiontree.Tree) error {
	var f *os.File
	var err error
	if outputPath == "" {
		f = os.Stdout
	} else {
		f, err = os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	_, err = fmt.Fprint(f, t)
	return err
}
