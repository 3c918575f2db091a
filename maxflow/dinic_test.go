package maxflow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/minflow/graph"
	"github.com/katalvlaran/minflow/maxflow"
)

type DinicSuite struct {
	suite.Suite
}

func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}

func (s *DinicSuite) TestSingleArc() {
	require := require.New(s.T())

	b := graph.NewBuilder()
	b.AddArc(0, 1)
	g := b.Build()

	flow, _, err := maxflow.Dinic(context.Background(), g, []int64{7}, 0, 1, maxflow.DefaultOptions())
	require.NoError(err)
	require.Equal(int64(7), flow)
}

func (s *DinicSuite) TestTwoDisjointPaths() {
	require := require.New(s.T())

	b := graph.NewBuilder()
	a0 := b.AddArc(0, 1) // s->a
	a1 := b.AddArc(1, 3) // a->t
	a2 := b.AddArc(0, 2) // s->b
	a3 := b.AddArc(2, 3) // b->t
	g := b.Build()

	cap := make([]int64, g.NumArcs())
	cap[a0], cap[a1], cap[a2], cap[a3] = 5, 4, 3, 6

	flow, _, err := maxflow.Dinic(context.Background(), g, cap, 0, 3, maxflow.DefaultOptions())
	require.NoError(err)
	require.Equal(int64(7), flow) // min(5,4) + min(3,6)
}

func (s *DinicSuite) TestBottleneck() {
	require := require.New(s.T())

	b := graph.NewBuilder()
	a0 := b.AddArc(0, 1)
	a1 := b.AddArc(1, 2)
	a2 := b.AddArc(2, 3)
	g := b.Build()

	cap := make([]int64, g.NumArcs())
	cap[a0], cap[a1], cap[a2] = 10, 2, 10

	flow, residual, err := maxflow.Dinic(context.Background(), g, cap, 0, 3, maxflow.DefaultOptions())
	require.NoError(err)
	require.Equal(int64(2), flow)
	require.Equal(int64(8), residual[a0])
	require.Equal(int64(0), residual[a1])
}

func (s *DinicSuite) TestDisconnectedSinkYieldsZeroFlow() {
	require := require.New(s.T())

	b := graph.NewBuilder()
	b.AddArc(0, 1)
	b.AddArc(2, 0) // unrelated arc, still grows node count to include node 2
	g := b.Build()

	flow, _, err := maxflow.Dinic(context.Background(), g, []int64{3, 5}, 0, 2, maxflow.DefaultOptions())
	require.NoError(err)
	require.Equal(int64(0), flow)
}

func (s *DinicSuite) TestSourceOutOfRange() {
	require := require.New(s.T())

	b := graph.NewBuilder()
	b.AddArc(0, 1)
	g := b.Build()

	_, _, err := maxflow.Dinic(context.Background(), g, []int64{1}, 5, 1, maxflow.DefaultOptions())
	require.ErrorIs(err, maxflow.ErrSourceOutOfRange)
}
