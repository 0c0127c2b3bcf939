package scoring

import (
	"github.com/dd0wney/cluso-surprise/pkg/algorithms"
	"github.com/dd0wney/cluso-surprise/pkg/graph"
)

// Detect runs each named baseline algorithm on g and returns its partition as
// a candidate.
func Detect(g *graph.Graph, names []string, maxIterations int) ([]Candidate, error) {
	candidates := make([]Candidate, 0, len(names))
	for _, name := range names {
		result, err := algorithms.Detect(g, name, maxIterations)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Candidate{Name: name, Partition: result.Partition})
	}
	return candidates, nil
}
