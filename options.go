package decisiontree

import "github.com/chardzhong/Congress-Decision-Tree/dataset"

/*
Logger is an interface wrapping the Logf method, used to trace the growth of
a tree. Logf takes a format and arguments in the manner of fmt.Printf.
*/
type Logger interface {
	Logf(format string, a ...interface{})
}

type nopLogger struct{}

func (nopLogger) Logf(string, ...interface{}) {}

/*
Option is a function that customizes how Learn grows a tree.
*/
type Option func(*learnConfig)

type learnConfig struct {
	trimmer          *dataset.Trimmer
	sharedFeatureUse bool
	logger           Logger
}

func newLearnConfig(opts []Option) *learnConfig {
	lc := &learnConfig{
		trimmer: dataset.DefaultTrimmer(),
		logger:  nopLogger{},
	}
	for _, o := range opts {
		o(lc)
	}
	return lc
}

/*
WithImputationValues takes the two values non-label features are expected
to take and returns an Option to impute any other value with the majority
of them, a winning ties. Without it, Yea and Nay are expected.
*/
func WithImputationValues(a, b string) Option {
	return func(lc *learnConfig) {
		lc.trimmer = dataset.NewTrimmer(a, b)
	}
}

/*
WithSharedFeatureUse returns an Option to make a feature chosen for a split
unavailable on every node grown afterwards during the same Learn call, not
just on the nodes below the split.
*/
func WithSharedFeatureUse() Option {
	return func(lc *learnConfig) {
		lc.sharedFeatureUse = true
	}
}

// WithLogger returns an Option to trace the growth of the tree on the given Logger.
func WithLogger(l Logger) Option {
	return func(lc *learnConfig) {
		if l != nil {
			lc.logger = l
		}
	}
}
