package behavior_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joeycumines/nodetree/internal/behavior"
	"github.com/joeycumines/nodetree/internal/leaf"
)

func TestKind(t *testing.T) {
	t.Parallel()
	root, err := behavior.NewRoot(nil)
	require.NoError(t, err)

	require.Equal(t, behavior.KindLeaf, leaf.NewParity(1).Kind())
	require.Equal(t, behavior.KindLeaf, behavior.LeafFunc(func() bool { return true }).Kind())
	require.Equal(t, behavior.KindComposite, new(behavior.Selector).Kind())
	require.Equal(t, behavior.KindComposite, new(behavior.Sequence).Kind())
	require.Equal(t, behavior.KindRoot, root.Kind())

	require.Equal(t, "leaf", behavior.KindLeaf.String())
	require.Equal(t, "composite", behavior.KindComposite.String())
	require.Equal(t, "root", behavior.KindRoot.String())
	require.Equal(t, "kind(9)", behavior.Kind(9).String())
}

func TestLeafFunc(t *testing.T) {
	t.Parallel()
	calls := 0
	f := behavior.LeafFunc(func() bool {
		calls++
		return calls%2 == 1
	})
	require.True(t, f.Execute())
	require.False(t, f.Execute())
	require.Equal(t, 2, calls)
}

func TestWalk(t *testing.T) {
	t.Parallel()
	inner, err := behavior.NewSequence(leaf.NewParity(2))
	require.NoError(t, err)
	sel, err := behavior.NewSelector(leaf.NewDistance(3, 5), inner)
	require.NoError(t, err)
	root, err := behavior.NewRoot(sel)
	require.NoError(t, err)

	type visit struct {
		kind  behavior.Kind
		depth int
	}
	var visits []visit
	behavior.Walk(root, func(n behavior.Node, depth int) bool {
		visits = append(visits, visit{n.Kind(), depth})
		return true
	})
	require.Equal(t, []visit{
		{behavior.KindRoot, 0},
		{behavior.KindComposite, 1},
		{behavior.KindLeaf, 2},
		{behavior.KindComposite, 2},
		{behavior.KindLeaf, 3},
	}, visits)
}

func TestWalk_SkipAndAbsent(t *testing.T) {
	t.Parallel()
	root, err := behavior.NewRoot(nil)
	require.NoError(t, err)
	var seen []behavior.Node
	behavior.Walk(root, func(n behavior.Node, depth int) bool {
		seen = append(seen, n)
		return true
	})
	require.Len(t, seen, 2)
	require.Nil(t, seen[1])

	sel, err := behavior.NewSelector(leaf.NewParity(2))
	require.NoError(t, err)
	count := 0
	behavior.Walk(sel, func(behavior.Node, int) bool {
		count++
		return false
	})
	require.Equal(t, 1, count)
}
