// Package render draws behavior trees and their results for terminals.
package render

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/tree"

	"github.com/joeycumines/nodetree/internal/behavior"
)

// Styles controls how outlines and results are decorated.
type Styles struct {
	Composite lipgloss.Style
	Root      lipgloss.Style
	Leaf      lipgloss.Style
	Empty     lipgloss.Style
	Success   lipgloss.Style
	Failure   lipgloss.Style
	Enum      lipgloss.Style
}

// Plain returns undecorated styles.
func Plain() Styles {
	s := lipgloss.NewStyle()
	return Styles{
		Composite: s,
		Root:      s,
		Leaf:      s,
		Empty:     s,
		Success:   s,
		Failure:   s,
		Enum:      s,
	}
}

// Colored returns the terminal palette.
func Colored() Styles {
	return Styles{
		Composite: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Root:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Leaf:      lipgloss.NewStyle(),
		Empty:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("240")),
		Success:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Failure:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Enum:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Outline renders the structure beneath n, one node per line.
func (s Styles) Outline(n behavior.Node) string {
	switch v := s.build(n).(type) {
	case *tree.Tree:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Result renders an Execute outcome.
func (s Styles) Result(ok bool) string {
	if ok {
		return s.Success.Render("SUCCESS")
	}
	return s.Failure.Render("FAILURE")
}

// Label names a single node.
func Label(n behavior.Node) string {
	switch v := n.(type) {
	case nil:
		return "(empty)"
	case *behavior.Selector:
		return "Selector"
	case *behavior.Sequence:
		return "Sequence"
	case *behavior.Root:
		return "Root"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%T", n)
	}
}

// entry is one node of a pre-order walk.
type entry struct {
	node  behavior.Node
	depth int
}

func (s Styles) build(n behavior.Node) any {
	var entries []entry
	behavior.Walk(n, func(node behavior.Node, depth int) bool {
		entries = append(entries, entry{node: node, depth: depth})
		return true
	})
	item, _ := s.assemble(entries, 0)
	return item
}

// assemble builds the item for entries[i] from the entries that follow it at
// the next depth, returning the index just past its subtree.
func (s Styles) assemble(entries []entry, i int) (any, int) {
	e := entries[i]
	label := Label(e.node)
	switch e.node.(type) {
	case nil:
		return s.Empty.Render(label), i + 1
	case *behavior.Selector, *behavior.Sequence:
		label = s.Composite.Render(label)
	case *behavior.Root:
		label = s.Root.Render(label)
	default:
		return s.Leaf.Render(label), i + 1
	}
	t := tree.Root(label).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(s.Enum)
	next := i + 1
	for next < len(entries) && entries[next].depth > e.depth {
		var child any
		child, next = s.assemble(entries, next)
		t.Child(child)
	}
	return t, next
}

// Outline renders n with Plain styles.
func Outline(n behavior.Node) string {
	return Plain().Outline(n)
}
