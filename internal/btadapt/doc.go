// Package btadapt converts between behavior trees from package behavior and
// github.com/joeycumines/go-behaviortree.
//
// ToBT maps the structure onto go-behaviortree composites (bt.Selector and
// bt.Sequence), so a converted tree ticks to Success exactly when the
// source tree executes to true. FromBT goes the other way, wrapping a
// go-behaviortree node as a leaf.
//
// go-behaviortree has a Running status that the behavior package does not
// model. A wrapped node that reports Running, or that returns an error, is
// treated as failed.
package btadapt
