package layout

import (
	"slices"
	"testing"

	"github.com/evoviz/evoviz/pkg/dag"
)

// lexProfile orders siblings by ascending ID.
type lexProfile struct{}

func (lexProfile) Less(a, b string) bool { return a < b }
func (lexProfile) Axis() Axis            { return AxisVertical }

// scoreProfile orders siblings by descending score then ascending ID.
type scoreProfile struct {
	score map[string]float64
}

func (p scoreProfile) Less(a, b string) bool {
	if p.score[a] != p.score[b] {
		return p.score[a] > p.score[b]
	}
	return a < b
}
func (scoreProfile) Axis() Axis { return AxisHorizontal }

func ranked(ranks map[string]int, nodes []string, edges [][2]string) *dag.DAG {
	g := dag.New()
	for _, id := range nodes {
		_ = g.AddNode(dag.Node{ID: id})
	}
	for _, e := range edges {
		_ = g.AddEdge(dag.Edge{From: e[0], To: e[1]})
	}
	g.SetRanks(ranks)
	return g
}

func TestOrderRanksFirstRankUsesDomainSort(t *testing.T) {
	g := ranked(
		map[string]int{"zeta": 0, "alpha": 0, "mid": 0},
		[]string{"zeta", "alpha", "mid"},
		nil,
	)

	rows := OrderRanks(g, lexProfile{})
	want := []string{"alpha", "mid", "zeta"}
	if !slices.Equal(rows[0], want) {
		t.Errorf("rank 0 = %v, want %v", rows[0], want)
	}
}

func TestOrderRanksFirstRankHonorsProfile(t *testing.T) {
	g := ranked(
		map[string]int{"a": 0, "b": 0, "c": 0},
		[]string{"a", "b", "c"},
		nil,
	)
	p := scoreProfile{score: map[string]float64{"a": 0.1, "b": 0.9, "c": 0.5}}

	rows := OrderRanks(g, p)
	want := []string{"b", "c", "a"}
	if !slices.Equal(rows[0], want) {
		t.Errorf("rank 0 = %v, want %v", rows[0], want)
	}
}

func TestOrderRanksGroupsUnderFirstParent(t *testing.T) {
	// Rank 0: p2, p1 (lexicographic gives p1, p2). Rank 1 children:
	// c_of_p2 attaches to p2 via its first inbound edge, c_of_p1 to p1.
	// Groups follow the parents' rank-0 positions, so p1's child comes
	// first even though its ID sorts later.
	g := ranked(
		map[string]int{"p1": 0, "p2": 0, "x_child": 1, "a_child": 1},
		[]string{"p1", "p2", "x_child", "a_child"},
		[][2]string{{"p1", "x_child"}, {"p2", "a_child"}},
	)

	rows := OrderRanks(g, lexProfile{})
	if want := []string{"p1", "p2"}; !slices.Equal(rows[0], want) {
		t.Fatalf("rank 0 = %v, want %v", rows[0], want)
	}
	if want := []string{"x_child", "a_child"}; !slices.Equal(rows[1], want) {
		t.Errorf("rank 1 = %v, want %v", rows[1], want)
	}
}

func TestOrderRanksFirstInboundEdgeWins(t *testing.T) {
	// The child has two parents; whichever edge was inserted first decides
	// its group.
	g := ranked(
		map[string]int{"p1": 0, "p2": 0, "child": 1, "other": 1},
		[]string{"p1", "p2", "child", "other"},
		[][2]string{{"p2", "child"}, {"p1", "child"}, {"p1", "other"}},
	)

	rows := OrderRanks(g, lexProfile{})
	// p1 sits at index 0, p2 at index 1. child grouped under p2 (first
	// edge), other under p1, so other precedes child.
	if want := []string{"other", "child"}; !slices.Equal(rows[1], want) {
		t.Errorf("rank 1 = %v, want %v", rows[1], want)
	}
}

func TestOrderRanksUngroupedSortAfterGrouped(t *testing.T) {
	// "adrift" has no inbound edge; it falls back to lexicographic order
	// after every grouped node.
	g := ranked(
		map[string]int{"p": 0, "adrift": 1, "zchild": 1},
		[]string{"p", "adrift", "zchild"},
		[][2]string{{"p", "zchild"}},
	)

	rows := OrderRanks(g, lexProfile{})
	if want := []string{"zchild", "adrift"}; !slices.Equal(rows[1], want) {
		t.Errorf("rank 1 = %v, want %v", rows[1], want)
	}
}

func TestOrderRanksDeterministic(t *testing.T) {
	mk := func() *dag.DAG {
		return ranked(
			map[string]int{"r1": 0, "r2": 0, "a": 1, "b": 1, "c": 1, "d": 2},
			[]string{"r2", "r1", "c", "a", "b", "d"},
			[][2]string{{"r1", "a"}, {"r2", "b"}, {"r1", "c"}, {"a", "d"}},
		)
	}

	first := OrderRanks(mk(), lexProfile{})
	for i := 0; i < 10; i++ {
		again := OrderRanks(mk(), lexProfile{})
		for rank, ids := range first {
			if !slices.Equal(again[rank], ids) {
				t.Fatalf("run %d: rank %d = %v, want %v", i, rank, again[rank], ids)
			}
		}
	}
}
