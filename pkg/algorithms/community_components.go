package algorithms

import (
	"container/list"

	"github.com/dd0wney/cluso-surprise/pkg/graph"
)

// ConnectedComponents finds all connected components in the graph
func ConnectedComponents(g *graph.Graph) *CommunityDetectionResult {
	visited := make([]bool, g.NodeCount())
	p := make(graph.Partition, g.NodeCount())
	communityID := 0

	// BFS to find each component
	for start := 0; start < g.NodeCount(); start++ {
		if visited[start] {
			continue
		}

		queue := list.New()
		queue.PushBack(start)
		visited[start] = true

		for queue.Len() > 0 {
			node := queue.Remove(queue.Front()).(int)
			p[node] = communityID

			for _, neighbor := range g.Neighbors(node) {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue.PushBack(neighbor)
				}
			}
		}

		communityID++
	}

	return newResult(g, AlgorithmComponents, p)
}
