package graph

import "fmt"

// Partition assigns each node index of a graph to a community id.
type Partition []int

// Validate checks the partition covers exactly the nodes of g.
func (p Partition) Validate(g *Graph) error {
	if len(p) != g.NodeCount() {
		return fmt.Errorf("%w: %d assignments for %d nodes", ErrSizeMismatch, len(p), g.NodeCount())
	}
	for node, c := range p {
		if c < 0 {
			return fmt.Errorf("%w: node %q assigned to %d", ErrInvalidCommunity, g.Label(node), c)
		}
	}
	return nil
}

// Normalize remaps community ids to 0..k-1 in order of first appearance.
func (p Partition) Normalize() Partition {
	remap := make(map[int]int)
	out := make(Partition, len(p))
	for node, c := range p {
		id, ok := remap[c]
		if !ok {
			id = len(remap)
			remap[c] = id
		}
		out[node] = id
	}
	return out
}

// Sizes returns community sizes keyed by community id.
func (p Partition) Sizes() map[int]int64 {
	sizes := make(map[int]int64)
	for _, c := range p {
		sizes[c]++
	}
	return sizes
}

// Communities returns the number of distinct communities.
func (p Partition) Communities() int {
	return len(p.Sizes())
}

// Members returns node indexes grouped by normalized community id.
func (p Partition) Members() [][]int {
	norm := p.Normalize()
	groups := make([][]int, norm.Communities())
	for node, c := range norm {
		groups[c] = append(groups[c], node)
	}
	return groups
}
