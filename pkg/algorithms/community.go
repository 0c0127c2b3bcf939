package algorithms

import (
	"fmt"

	"github.com/dd0wney/cluso-surprise/pkg/graph"
)

// Detect runs the named baseline algorithm on g.
func Detect(g *graph.Graph, algorithm string, maxIterations int) (*CommunityDetectionResult, error) {
	switch algorithm {
	case AlgorithmComponents:
		return ConnectedComponents(g), nil
	case AlgorithmLabelPropagation:
		return LabelPropagation(g, maxIterations), nil
	case AlgorithmSingletons:
		return Singletons(g), nil
	case AlgorithmWhole:
		return WholeGraph(g), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", algorithm)
	}
}

// FromPartition describes an externally supplied partition of g.
func FromPartition(g *graph.Graph, name string, p graph.Partition) (*CommunityDetectionResult, error) {
	if err := p.Validate(g); err != nil {
		return nil, err
	}
	return newResult(g, name, p), nil
}

// Singletons places every node in its own community.
func Singletons(g *graph.Graph) *CommunityDetectionResult {
	p := make(graph.Partition, g.NodeCount())
	for i := range p {
		p[i] = i
	}
	return newResult(g, AlgorithmSingletons, p)
}

// WholeGraph places every node in one community.
func WholeGraph(g *graph.Graph) *CommunityDetectionResult {
	return newResult(g, AlgorithmWhole, make(graph.Partition, g.NodeCount()))
}

// newResult builds communities, densities and modularity for a partition.
func newResult(g *graph.Graph, algorithm string, p graph.Partition) *CommunityDetectionResult {
	p = p.Normalize()
	members := p.Members()

	intra := make([]int, len(members))
	for _, e := range g.Edges() {
		if p[e.From] == p[e.To] {
			intra[p[e.From]]++
		}
	}

	communities := make([]*Community, 0, len(members))
	for id, nodes := range members {
		size := len(nodes)
		density := 0.0
		if size > 1 {
			density = float64(2*intra[id]) / float64(size*(size-1))
		}
		communities = append(communities, &Community{
			ID:      id,
			Nodes:   nodes,
			Size:    size,
			Density: density,
		})
	}

	return &CommunityDetectionResult{
		Algorithm:   algorithm,
		Communities: communities,
		Modularity:  Modularity(g, p),
		Partition:   p,
	}
}
