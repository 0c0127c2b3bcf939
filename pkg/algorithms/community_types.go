package algorithms

import "github.com/dd0wney/cluso-surprise/pkg/graph"

// Algorithm names accepted by Detect
const (
	AlgorithmComponents       = "components"
	AlgorithmLabelPropagation = "label_propagation"
	AlgorithmSingletons       = "singletons"
	AlgorithmWhole            = "whole"
)

// Algorithms lists every algorithm Detect understands, in report order.
var Algorithms = []string{
	AlgorithmComponents,
	AlgorithmLabelPropagation,
	AlgorithmSingletons,
	AlgorithmWhole,
}

// Community represents a detected community
type Community struct {
	ID      int
	Nodes   []int
	Size    int
	Density float64 // Edge density within community
}

// CommunityDetectionResult contains detected communities
type CommunityDetectionResult struct {
	Algorithm   string
	Communities []*Community
	Modularity  float64         // Quality measure of the partitioning
	Partition   graph.Partition // Node index -> normalized community ID
	Iterations  int             // Sweeps performed, for iterative algorithms
}
