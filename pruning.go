package decisiontree

/*
Pruner is an interface wrapping the Prune method, that can be used
to decide whether a partition is good enough to become part of a tree
or if it must be discarded instead.

The Prune method takes a partition and returns a boolean: true to indicate
the partition must be discarded, false to allow its adding to the tree and
further development.
*/
type Pruner interface {
	Prune(p *Partition) bool
}

/*
PrunerFunc wraps a function with the Prune method signature to implement
the Pruner interface
*/
type PrunerFunc func(p *Partition) bool

/*
Prune takes a partition and invokes the PrunerFunc with it to return its
boolean result.
*/
func (pf PrunerFunc) Prune(p *Partition) bool {
	return pf(p)
}

/*
MinimumExamplesPruner takes a minimum number of records and returns a Pruner
whose Prune method returns true when any subset of the partition has fewer
records than that minimum. Since subsets exist for every value of the
partition's feature, a minimum over 0 also discards partitions with empty
subsets.
*/
func MinimumExamplesPruner(minExamples int) Pruner {
	return PrunerFunc(func(p *Partition) bool {
		return p.SmallestSubset() < minExamples
	})
}

/*
NoPruner returns a Pruner whose Prune method always returns false, that is,
never prunes.
*/
func NoPruner() Pruner {
	return PrunerFunc(func(p *Partition) bool {
		return false
	})
}
