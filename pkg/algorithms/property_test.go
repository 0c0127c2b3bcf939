package algorithms

import (
	"fmt"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/cluso-surprise/pkg/graph"
	"github.com/dd0wney/cluso-surprise/pkg/surprise"
)

// randomGraph builds a graph on nodes labelled n0..n{nodes-1} from index pairs.
func randomGraph(nodes int, pairs []int) *graph.Graph {
	g := graph.New()
	for i := 0; i < nodes; i++ {
		g.AddNode(fmt.Sprintf("n%d", i))
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		g.AddEdge(fmt.Sprintf("n%d", pairs[i]%nodes), fmt.Sprintf("n%d", pairs[i+1]%nodes))
	}
	return g
}

// TestPartitionProperties checks that any graph/partition pair yields
// statistics inside the hypergeometric support
func TestPartitionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("extracted statistics are always scoreable", prop.ForAll(
		func(nodes int, pairs []int, labels []int) bool {
			g := randomGraph(nodes, pairs)
			p := make(graph.Partition, nodes)
			for i := range p {
				if len(labels) > 0 {
					p[i] = labels[i%len(labels)]
				}
			}

			stats, err := SurpriseStatistics(g, p)
			if err != nil {
				return false
			}
			score, err := surprise.Score(stats)
			return err == nil && score >= 0 && !math.Signbit(score)
		},
		gen.IntRange(1, 40),
		gen.SliceOf(gen.IntRange(0, 1000)),
		gen.SliceOf(gen.IntRange(0, 5)),
	))

	properties.Property("detected partitions are scoreable", prop.ForAll(
		func(nodes int, pairs []int) bool {
			g := randomGraph(nodes, pairs)
			for _, name := range Algorithms {
				result, err := Detect(g, name, 25)
				if err != nil {
					return false
				}
				stats, err := SurpriseStatistics(g, result.Partition)
				if err != nil {
					return false
				}
				if _, err := surprise.Score(stats); err != nil {
					return false
				}
				if result.Modularity < -0.5-1e-9 || result.Modularity > 1 {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 40),
		gen.SliceOf(gen.IntRange(0, 1000)),
	))

	properties.TestingRun(t)
}
