// Package graph holds the undirected simple graphs whose partitions are scored.
package graph

import "sort"

// Graph is an undirected simple graph over string-labelled nodes.
// Nodes get dense indexes in first-seen order.
type Graph struct {
	labels    []string
	index     map[string]int
	adjacency []map[int]struct{}
	edges     int
}

// Edge is an undirected edge stored with From < To.
type Edge struct {
	From int
	To   int
}

// New creates an empty graph
func New() *Graph {
	return &Graph{
		index: make(map[string]int),
	}
}

// AddNode registers label if unseen and returns its index.
func (g *Graph) AddNode(label string) int {
	if id, ok := g.index[label]; ok {
		return id
	}
	id := len(g.labels)
	g.labels = append(g.labels, label)
	g.index[label] = id
	g.adjacency = append(g.adjacency, make(map[int]struct{}))
	return id
}

// AddEdge connects a and b, registering both nodes. It reports false when the
// edge is a self-loop or already present; both endpoints are registered anyway.
func (g *Graph) AddEdge(a, b string) bool {
	from := g.AddNode(a)
	to := g.AddNode(b)

	if from == to {
		return false
	}
	if _, exists := g.adjacency[from][to]; exists {
		return false
	}

	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}
	g.edges++
	return true
}

// NodeCount returns the number of nodes
func (g *Graph) NodeCount() int {
	return len(g.labels)
}

// EdgeCount returns the number of undirected edges
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Label returns the label of node id.
func (g *Graph) Label(id int) string {
	return g.labels[id]
}

// Index returns the index of label.
func (g *Graph) Index(label string) (int, bool) {
	id, ok := g.index[label]
	return id, ok
}

// Degree returns the number of neighbours of node id.
func (g *Graph) Degree(id int) int {
	return len(g.adjacency[id])
}

// HasEdge reports whether a and b are adjacent.
func (g *Graph) HasEdge(a, b int) bool {
	_, ok := g.adjacency[a][b]
	return ok
}

// Neighbors returns the neighbours of node id in ascending index order.
func (g *Graph) Neighbors(id int) []int {
	neighbors := make([]int, 0, len(g.adjacency[id]))
	for n := range g.adjacency[id] {
		neighbors = append(neighbors, n)
	}
	sort.Ints(neighbors)
	return neighbors
}

// Edges returns every edge once, ordered by (From, To).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.edges)
	for from := range g.adjacency {
		for _, to := range g.Neighbors(from) {
			if from < to {
				edges = append(edges, Edge{From: from, To: to})
			}
		}
	}
	return edges
}
