package dag

import (
	"errors"
	"strconv"
	"testing"
)

func TestAddNode(t *testing.T) {
	tests := []struct {
		name    string
		nodes   []Node
		wantErr error
	}{
		{
			name:  "Single",
			nodes: []Node{{ID: "a"}},
		},
		{
			name:  "Multiple",
			nodes: []Node{{ID: "a"}, {ID: "b"}, {ID: "c", Rank: 2}},
		},
		{
			name:    "EmptyID",
			nodes:   []Node{{ID: ""}},
			wantErr: ErrInvalidNodeID,
		},
		{
			name:    "Duplicate",
			nodes:   []Node{{ID: "a"}, {ID: "a"}},
			wantErr: ErrDuplicateNodeID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			var err error
			for _, n := range tt.nodes {
				if e := g.AddNode(n); e != nil {
					err = e
				}
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddNode error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAddEdge(t *testing.T) {
	tests := []struct {
		name    string
		edge    Edge
		wantErr error
	}{
		{name: "Valid", edge: Edge{From: "a", To: "b"}},
		{name: "UnknownSource", edge: Edge{From: "x", To: "b"}, wantErr: ErrUnknownSourceNode},
		{name: "UnknownTarget", edge: Edge{From: "a", To: "x"}, wantErr: ErrUnknownTargetNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			_ = g.AddNode(Node{ID: "a"})
			_ = g.AddNode(Node{ID: "b"})

			err := g.AddEdge(tt.edge)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddEdge error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	g := New()
	ids := []string{"zeta", "alpha", "mid", "beta"}
	for _, id := range ids {
		if err := g.AddNode(Node{ID: id}); err != nil {
			t.Fatalf("AddNode(%s): %v", id, err)
		}
	}

	got := NodeIDs(g.Nodes())
	for i, id := range ids {
		if got[i] != id {
			t.Errorf("Nodes()[%d] = %s, want %s", i, got[i], id)
		}
	}
}

func TestSetRanks(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})
	_ = g.AddNode(Node{ID: "c"})

	g.SetRanks(map[string]int{"b": 1, "c": 2})

	if n, _ := g.Node("a"); n.Rank != 0 {
		t.Errorf("rank(a) = %d, want 0 (unlisted nodes keep their rank)", n.Rank)
	}
	if n, _ := g.Node("b"); n.Rank != 1 {
		t.Errorf("rank(b) = %d, want 1", n.Rank)
	}
	if got := g.MaxRank(); got != 2 {
		t.Errorf("MaxRank = %d, want 2", got)
	}
	if got := NodeIDs(g.NodesInRank(1)); len(got) != 1 || got[0] != "b" {
		t.Errorf("NodesInRank(1) = %v, want [b]", got)
	}
}

func TestSetRanksRebuildsInInsertionOrder(t *testing.T) {
	g := New()
	for _, id := range []string{"c", "a", "b"} {
		_ = g.AddNode(Node{ID: id})
	}

	// Collapse everything into rank 0. The rank index must follow node
	// insertion order, not map iteration order.
	g.SetRanks(map[string]int{"c": 0, "a": 0, "b": 0})

	got := NodeIDs(g.NodesInRank(0))
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("NodesInRank(0) = %v, want %v", got, want)
		}
	}
}

func TestTraversal(t *testing.T) {
	g := New()
	for _, id := range []string{"a", "b", "c", "d"} {
		_ = g.AddNode(Node{ID: id})
	}
	_ = g.AddEdge(Edge{From: "a", To: "b"})
	_ = g.AddEdge(Edge{From: "a", To: "c"})
	_ = g.AddEdge(Edge{From: "b", To: "d"})
	_ = g.AddEdge(Edge{From: "c", To: "d"})

	if got := g.Children("a"); len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("Children(a) = %v, want [b c]", got)
	}
	if got := g.Parents("d"); len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("Parents(d) = %v, want [b c]", got)
	}
	if got := g.InDegree("d"); got != 2 {
		t.Errorf("InDegree(d) = %d, want 2", got)
	}
	if got := g.OutDegree("a"); got != 2 {
		t.Errorf("OutDegree(a) = %d, want 2", got)
	}

	sources := NodeIDs(g.Sources())
	if len(sources) != 1 || sources[0] != "a" {
		t.Errorf("Sources = %v, want [a]", sources)
	}
	sinks := NodeIDs(g.Sinks())
	if len(sinks) != 1 || sinks[0] != "d" {
		t.Errorf("Sinks = %v, want [d]", sinks)
	}
}

func TestRemoveEdge(t *testing.T) {
	g := New()
	for _, id := range []string{"a", "b", "c"} {
		_ = g.AddNode(Node{ID: id})
	}
	_ = g.AddEdge(Edge{From: "a", To: "b"})
	_ = g.AddEdge(Edge{From: "b", To: "c"})

	g.RemoveEdge("a", "b")

	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d, want 1", got)
	}
	if got := g.Children("a"); len(got) != 0 {
		t.Errorf("Children(a) = %v, want empty", got)
	}
	if got := g.Parents("b"); len(got) != 0 {
		t.Errorf("Parents(b) = %v, want empty", got)
	}

	// Removing an absent edge must not disturb anything.
	g.RemoveEdge("a", "c")
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() after absent removal = %d, want 1", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		edges   [][2]string
		wantErr error
	}{
		{
			name:  "Acyclic",
			edges: [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}},
		},
		{
			name:    "SimpleCycle",
			edges:   [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}},
			wantErr: ErrGraphHasCycle,
		},
		{
			name:    "SelfLoop",
			edges:   [][2]string{{"a", "a"}},
			wantErr: ErrGraphHasCycle,
		},
		{
			name:  "Disconnected",
			edges: [][2]string{{"a", "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			for _, id := range []string{"a", "b", "c"} {
				_ = g.AddNode(Node{ID: id})
			}
			for _, e := range tt.edges {
				_ = g.AddEdge(Edge{From: e[0], To: e[1]})
			}

			if err := g.Validate(); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDeepChain(t *testing.T) {
	// A long chain must not overflow the stack: validation is iterative.
	g := New()
	const depth = 100000
	prev := ""
	for i := 0; i < depth; i++ {
		id := "n" + strconv.Itoa(i)
		_ = g.AddNode(Node{ID: id})
		if prev != "" {
			_ = g.AddEdge(Edge{From: prev, To: id})
		}
		prev = id
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate = %v, want nil", err)
	}
}

func TestPosMap(t *testing.T) {
	m := PosMap([]string{"x", "y", "z"})
	if m["x"] != 0 || m["y"] != 1 || m["z"] != 2 {
		t.Errorf("PosMap = %v", m)
	}
}
