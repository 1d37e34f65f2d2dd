// Package leaf provides ready-made leaf nodes for behavior trees: simple
// checks and actions (Distance, Parity, MoveTo, Wait) and dynamic conditions
// backed by expr-lang (Expr) or JavaScript via goja (Script).
//
// Leaves never return errors from Execute. Problems found while building a
// leaf are returned by its constructor; problems found while running it are
// logged and reported as failure.
package leaf
