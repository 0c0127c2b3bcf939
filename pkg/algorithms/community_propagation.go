package algorithms

import "github.com/dd0wney/cluso-surprise/pkg/graph"

// LabelPropagation performs label propagation for community detection.
// Nodes are visited in index order and ties go to the smallest label, so the
// result is deterministic for a given graph.
func LabelPropagation(g *graph.Graph, maxIterations int) *CommunityDetectionResult {
	// Initialize: each node in its own community
	labels := make(graph.Partition, g.NodeCount())
	for i := range labels {
		labels[i] = i
	}

	iterations := 0
	for iter := 0; iter < maxIterations; iter++ {
		iterations++
		changed := false

		for node := 0; node < g.NodeCount(); node++ {
			neighbors := g.Neighbors(node)
			if len(neighbors) == 0 {
				continue
			}

			labelCount := make(map[int]int, len(neighbors))
			for _, neighbor := range neighbors {
				labelCount[labels[neighbor]]++
			}

			maxCount := 0
			for _, count := range labelCount {
				maxCount = max(maxCount, count)
			}

			// Keep the current label while it is among the most frequent
			best := labels[node]
			if labelCount[best] < maxCount {
				best = -1
				for label, count := range labelCount {
					if count == maxCount && (best < 0 || label < best) {
						best = label
					}
				}
			}

			if best != labels[node] {
				labels[node] = best
				changed = true
			}
		}

		if !changed {
			break // Converged
		}
	}

	result := newResult(g, AlgorithmLabelPropagation, labels)
	result.Iterations = iterations
	return result
}
