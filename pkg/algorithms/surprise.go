package algorithms

import (
	"github.com/dd0wney/cluso-surprise/pkg/graph"
	"github.com/dd0wney/cluso-surprise/pkg/surprise"
)

// SurpriseStatistics extracts the sufficient statistics of a graph and
// partition:
//
//	F = N(N-1)/2            node pairs
//	M = sum s_i(s_i-1)/2    intra-community pairs
//	n = |E|                 edges
//	p = intra-community edges
func SurpriseStatistics(g *graph.Graph, p graph.Partition) (surprise.Stats, error) {
	if err := p.Validate(g); err != nil {
		return surprise.Stats{}, err
	}

	nodes := int64(g.NodeCount())
	stats := surprise.Stats{
		F: nodes * (nodes - 1) / 2,
		N: int64(g.EdgeCount()),
	}

	for _, size := range p.Sizes() {
		stats.M += size * (size - 1) / 2
	}

	for _, e := range g.Edges() {
		if p[e.From] == p[e.To] {
			stats.P++
		}
	}

	return stats, nil
}

// Modularity computes Newman's modularity Q of a partition:
// the sum over communities of L_c/m - (d_c/2m)^2, where L_c is the number of
// intra-community edges and d_c the total degree of the community.
func Modularity(g *graph.Graph, p graph.Partition) float64 {
	m := float64(g.EdgeCount())
	if m == 0 || len(p) != g.NodeCount() {
		return 0.0
	}

	intra := make(map[int]float64)
	degree := make(map[int]float64)
	for node, c := range p {
		degree[c] += float64(g.Degree(node))
	}
	for _, e := range g.Edges() {
		if p[e.From] == p[e.To] {
			intra[p[e.From]]++
		}
	}

	q := 0.0
	for c, d := range degree {
		q += intra[c]/m - (d/(2*m))*(d/(2*m))
	}
	return q
}
