package algorithms

import (
	"math"
	"strings"
	"testing"

	"github.com/dd0wney/cluso-surprise/pkg/graph"
	"github.com/dd0wney/cluso-surprise/pkg/surprise"
)

// setupCommunityTestGraph builds a graph from "a b" lines
func setupCommunityTestGraph(t *testing.T, edges string) *graph.Graph {
	t.Helper()

	g, _, err := graph.ReadEdgeList(strings.NewReader(edges))
	if err != nil {
		t.Fatalf("Failed to read edge list: %v", err)
	}
	return g
}

const bridgedTriangles = "a b\nb c\nc a\nd e\ne f\nf d\nc d\n"

const splitTriangles = "a b\nb c\nc a\nd e\ne f\nf d\n"

// TestConnectedComponents_EmptyGraph tests connected components on empty graph
func TestConnectedComponents_EmptyGraph(t *testing.T) {
	result := ConnectedComponents(graph.New())

	if len(result.Communities) != 0 {
		t.Errorf("Expected 0 communities for empty graph, got %d", len(result.Communities))
	}
	if result.Modularity != 0 {
		t.Errorf("Expected modularity 0 for empty graph, got %f", result.Modularity)
	}
}

// TestConnectedComponents_SingleNode tests single node as one component
func TestConnectedComponents_SingleNode(t *testing.T) {
	g := graph.New()
	g.AddNode("solo")

	result := ConnectedComponents(g)

	if len(result.Communities) != 1 {
		t.Fatalf("Expected 1 community, got %d", len(result.Communities))
	}
	if result.Communities[0].Size != 1 {
		t.Errorf("Expected community size 1, got %d", result.Communities[0].Size)
	}
	if result.Communities[0].Density != 0 {
		t.Errorf("Expected density 0 for a singleton, got %f", result.Communities[0].Density)
	}
}

// TestConnectedComponents_MultipleComponents tests disconnected graph
func TestConnectedComponents_MultipleComponents(t *testing.T) {
	g := setupCommunityTestGraph(t, splitTriangles)

	result := ConnectedComponents(g)

	if len(result.Communities) != 2 {
		t.Fatalf("Expected 2 components, got %d", len(result.Communities))
	}
	for _, c := range result.Communities {
		if c.Size != 3 {
			t.Errorf("Expected component size 3, got %d", c.Size)
		}
		if c.Density != 1.0 {
			t.Errorf("Expected a triangle to have density 1, got %f", c.Density)
		}
	}

	a, _ := g.Index("a")
	d, _ := g.Index("d")
	if result.Partition[a] == result.Partition[d] {
		t.Error("Expected a and d in different components")
	}
}

func TestLabelPropagation_SplitTriangles(t *testing.T) {
	g := setupCommunityTestGraph(t, splitTriangles)

	result := LabelPropagation(g, 10)

	if len(result.Communities) != 2 {
		t.Fatalf("Expected 2 communities, got %d", len(result.Communities))
	}
	if result.Iterations != 2 {
		t.Errorf("Expected convergence on the second sweep, got %d iterations", result.Iterations)
	}
	if result.Algorithm != AlgorithmLabelPropagation {
		t.Errorf("Algorithm = %q", result.Algorithm)
	}
}

func TestLabelPropagation_Deterministic(t *testing.T) {
	g := setupCommunityTestGraph(t, bridgedTriangles+"g h\nh i\ni g\nf g\n")

	first := LabelPropagation(g, 20).Partition
	for i := 0; i < 20; i++ {
		again := LabelPropagation(g, 20).Partition
		for node := range first {
			if first[node] != again[node] {
				t.Fatalf("Run %d differs at node %d: %d vs %d", i, node, first[node], again[node])
			}
		}
	}
}

func TestLabelPropagation_MaxIterations(t *testing.T) {
	g := setupCommunityTestGraph(t, bridgedTriangles)

	result := LabelPropagation(g, 0)
	if result.Iterations != 0 {
		t.Errorf("Expected no sweeps, got %d", result.Iterations)
	}
	if len(result.Communities) != g.NodeCount() {
		t.Errorf("Expected singletons without sweeps, got %d communities", len(result.Communities))
	}
}

func TestBaselines(t *testing.T) {
	g := setupCommunityTestGraph(t, bridgedTriangles)

	singletons := Singletons(g)
	if len(singletons.Communities) != 6 {
		t.Errorf("Singletons: expected 6 communities, got %d", len(singletons.Communities))
	}

	whole := WholeGraph(g)
	if len(whole.Communities) != 1 {
		t.Errorf("WholeGraph: expected 1 community, got %d", len(whole.Communities))
	}
	if math.Abs(whole.Modularity) > 1e-12 {
		t.Errorf("WholeGraph: expected modularity 0, got %f", whole.Modularity)
	}
}

func TestDetect(t *testing.T) {
	g := setupCommunityTestGraph(t, bridgedTriangles)

	for _, name := range Algorithms {
		result, err := Detect(g, name, 10)
		if err != nil {
			t.Fatalf("Detect(%q) failed: %v", name, err)
		}
		if result.Algorithm != name {
			t.Errorf("Detect(%q) returned algorithm %q", name, result.Algorithm)
		}
		if len(result.Partition) != g.NodeCount() {
			t.Errorf("Detect(%q) partition covers %d of %d nodes", name, len(result.Partition), g.NodeCount())
		}
	}

	if _, err := Detect(g, "louvain", 10); err == nil {
		t.Error("Expected error for unknown algorithm")
	}
}

func TestFromPartition(t *testing.T) {
	g := setupCommunityTestGraph(t, bridgedTriangles)

	result, err := FromPartition(g, "given", graph.Partition{9, 9, 9, 4, 4, 4})
	if err != nil {
		t.Fatalf("FromPartition failed: %v", err)
	}
	if len(result.Communities) != 2 || result.Partition[3] != 1 {
		t.Errorf("Unexpected result: %+v", result.Partition)
	}

	if _, err := FromPartition(g, "short", graph.Partition{0}); err == nil {
		t.Error("Expected error for a partition of the wrong size")
	}
}

func TestModularity_BridgedTriangles(t *testing.T) {
	g := setupCommunityTestGraph(t, bridgedTriangles)

	q := Modularity(g, graph.Partition{0, 0, 0, 1, 1, 1})

	// 2 * (3/7 - (7/14)^2)
	if math.Abs(q-0.35714285714285715) > 1e-12 {
		t.Errorf("Modularity = %f, want 0.357143", q)
	}
}

func TestAverageClusteringCoefficient(t *testing.T) {
	g := setupCommunityTestGraph(t, splitTriangles)
	if avg := AverageClusteringCoefficient(g); avg != 1.0 {
		t.Errorf("Expected 1.0 for disjoint triangles, got %f", avg)
	}

	path := setupCommunityTestGraph(t, "a b\nb c\n")
	if avg := AverageClusteringCoefficient(path); avg != 0.0 {
		t.Errorf("Expected 0.0 for a path, got %f", avg)
	}

	if avg := AverageClusteringCoefficient(graph.New()); avg != 0.0 {
		t.Errorf("Expected 0.0 for an empty graph, got %f", avg)
	}
}

func TestSurpriseStatistics(t *testing.T) {
	g := setupCommunityTestGraph(t, bridgedTriangles)

	tests := []struct {
		name      string
		partition graph.Partition
		expected  surprise.Stats
		score     float64
	}{
		{"two triangles", graph.Partition{0, 0, 0, 1, 1, 1}, surprise.Stats{F: 15, M: 6, N: 7, P: 6}, 2.8543060418010806},
		{"whole graph", graph.Partition{0, 0, 0, 0, 0, 0}, surprise.Stats{F: 15, M: 15, N: 7, P: 7}, 0},
		{"singletons", graph.Partition{0, 1, 2, 3, 4, 5}, surprise.Stats{F: 15, M: 0, N: 7, P: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := SurpriseStatistics(g, tt.partition)
			if err != nil {
				t.Fatalf("SurpriseStatistics failed: %v", err)
			}
			if stats != tt.expected {
				t.Errorf("SurpriseStatistics = %v, want %v", stats, tt.expected)
			}

			score, err := surprise.Score(stats)
			if err != nil {
				t.Fatalf("Score failed: %v", err)
			}
			if math.Abs(score-tt.score) > 1e-6 {
				t.Errorf("Score = %f, want %f", score, tt.score)
			}
		})
	}
}

func TestSurpriseStatistics_InvalidPartition(t *testing.T) {
	g := setupCommunityTestGraph(t, bridgedTriangles)

	if _, err := SurpriseStatistics(g, graph.Partition{0, 0}); err == nil {
		t.Error("Expected error for a partition of the wrong size")
	}
}
