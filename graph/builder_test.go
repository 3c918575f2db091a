package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/minflow/graph"
)

type BuilderSuite struct {
	suite.Suite
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderSuite))
}

func (s *BuilderSuite) TestLazyNodeCreation() {
	require := require.New(s.T())

	b := graph.NewBuilder()
	a0 := b.AddArc(0, 1)
	a1 := b.AddArc(1, 2)
	g := b.Build()

	require.Equal(graph.ArcIndex(0), a0)
	require.Equal(graph.ArcIndex(1), a1)
	require.Equal(3, g.NumNodes())
	require.Equal(2, g.NumArcs())
}

func (s *BuilderSuite) TestOppositeIsInvolution() {
	require := require.New(s.T())

	b := graph.NewBuilder()
	a := b.AddArc(0, 1)
	g := b.Build()

	rev := g.Opposite(a)
	require.NotEqual(a, rev)
	require.Equal(a, g.Opposite(rev))
	require.True(g.IsDirect(a))
	require.False(g.IsDirect(rev))
	require.Equal(g.Tail(a), g.Head(rev))
	require.Equal(g.Head(a), g.Tail(rev))
}

func (s *BuilderSuite) TestIncidentArcsIncludeReverseOfIncoming() {
	require := require.New(s.T())

	b := graph.NewBuilder()
	out := b.AddArc(0, 1) // 0 -> 1
	in := b.AddArc(2, 1)  // 2 -> 1
	g := b.Build()

	incident1 := g.IncidentArcs(1)
	require.Len(incident1, 2, "node 1 has no direct outgoing arcs but two reverse-of-incoming arcs")

	var sawOutRev, sawInRev bool
	for _, arc := range incident1 {
		switch arc {
		case g.Opposite(out):
			sawOutRev = true
		case g.Opposite(in):
			sawInRev = true
		}
		require.Equal(graph.NodeIndex(1), g.Tail(arc))
	}
	require.True(sawOutRev)
	require.True(sawInRev)
}

func (s *BuilderSuite) TestParallelArcsAllowed() {
	require := require.New(s.T())

	b := graph.NewBuilder()
	a0 := b.AddArc(0, 1)
	a1 := b.AddArc(0, 1)
	g := b.Build()

	require.NotEqual(a0, a1)
	require.Equal(2, g.NumArcs())
	require.Len(g.IncidentArcs(0), 2)
}
