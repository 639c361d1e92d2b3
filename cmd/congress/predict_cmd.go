package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	decisiontree "github.com/chardzhong/Congress-Decision-Tree"
	"github.com/chardzhong/Congress-Decision-Tree/dataset/inputsample"
	"github.com/chardzhong/Congress-Decision-Tree/feature"
	"github.com/chardzhong/Congress-Decision-Tree/tree"
)

type predictCmdConfig struct {
	*learnCmdConfig
}

type stdoutFeatureValueRequester struct {
	w io.Writer
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{&learnCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict a value for a sample answering questions",
		Long:  `Grow a tree from a set of data and use it to predict the label value for a sample answering a reduced set of questions about its features`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.resolve(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			trainingData, err := config.trainingSource().read(context.Background(), config.logger())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			t := decisiontree.New(trainingData)
			err = t.Learn(config.label, config.minExamples, config.learnOptions()...)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(3)
			}
			class, probability, err := predict(t, os.Stdin, os.Stdout)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			fmt.Printf("Predicted %s is %s with probability %v\n", config.label, class, probability)
		},
	}
	config.addFlags(cmd)
	return cmd
}

/*
predict takes a grown tree, a reader and a writer and classifies a sample
whose values are asked for on the writer and read from the reader, only for
the features tested on the way to a leaf.
*/
func predict(t *decisiontree.Tree, r io.Reader, w io.Writer) (string, float64, error) {
	sample := inputsample.New(r, t.Data().Features(), stdoutFeatureValueRequester{w})
	return tree.ClassifyFunc(t.Root(), sample.ValueFor)
}

func (sfvr stdoutFeatureValueRequester) RequestValueFor(f *feature.Feature) error {
	_, err := fmt.Fprintf(sfvr.w, "Please provide the sample's %s:\n(valid values are %v)\n", f.Name(), f.AvailableValues())
	return err
}

func (sfvr stdoutFeatureValueRequester) RejectValueFor(f *feature.Feature, value string) error {
	_, err := fmt.Fprintf(sfvr.w, "%s is not a valid value for the sample's %s. Please provide one of %v.\n", value, f.Name(), f.AvailableValues())
	return err
}
