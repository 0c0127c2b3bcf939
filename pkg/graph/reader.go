package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/snappy"
)

// SnappyExt marks inputs stored in the snappy framing format.
const SnappyExt = ".sz"

// ReadSummary counts edge-list lines that did not add an edge.
type ReadSummary struct {
	Lines      int // Edge lines read
	SelfLoops  int // Lines connecting a node to itself
	Duplicates int // Lines repeating an existing edge, in either direction
}

// file wraps an opened input so closing releases the underlying descriptor.
type file struct {
	io.Reader
	closer io.Closer
}

func (f *file) Close() error {
	return f.closer.Close()
}

// Open opens path for reading, decoding snappy framing when the name ends in ".sz".
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, SnappyExt) {
		return &file{Reader: snappy.NewReader(f), closer: f}, nil
	}
	return f, nil
}

// ReadEdgeListFile loads a graph from an edge-list file.
func ReadEdgeListFile(path string) (*Graph, ReadSummary, error) {
	r, err := Open(path)
	if err != nil {
		return nil, ReadSummary{}, err
	}
	defer r.Close()

	g, summary, err := ReadEdgeList(r)
	return g, summary, withPath(err, path)
}

// ReadEdgeList reads one "a b" pair per line. Blank lines and lines starting
// with '#' are skipped; any other line must hold exactly two fields.
func ReadEdgeList(r io.Reader) (*Graph, ReadSummary, error) {
	g := New()
	var summary ReadSummary

	err := scanLines(r, func(line int, fields []string) error {
		if len(fields) != 2 {
			return &ParseError{Line: line, Cause: fmt.Errorf("%w: want 2 fields, got %d", ErrMalformedLine, len(fields))}
		}
		summary.Lines++

		if fields[0] == fields[1] {
			g.AddNode(fields[0])
			summary.SelfLoops++
			return nil
		}
		if !g.AddEdge(fields[0], fields[1]) {
			summary.Duplicates++
		}
		return nil
	})
	if err != nil {
		return nil, summary, err
	}
	return g, summary, nil
}

// ReadPartitionFile loads a partition of g from a file.
func ReadPartitionFile(path string, g *Graph) (Partition, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	p, err := ReadPartition(r, g)
	return p, withPath(err, path)
}

// ReadPartition reads one "label community" pair per line, where community is
// a non-negative integer. Every node of g must be assigned exactly once.
func ReadPartition(r io.Reader, g *Graph) (Partition, error) {
	p := make(Partition, g.NodeCount())
	assigned := make([]bool, g.NodeCount())

	err := scanLines(r, func(line int, fields []string) error {
		if len(fields) != 2 {
			return &ParseError{Line: line, Cause: fmt.Errorf("%w: want 2 fields, got %d", ErrMalformedLine, len(fields))}
		}

		node, ok := g.Index(fields[0])
		if !ok {
			return &ParseError{Line: line, Cause: fmt.Errorf("%w: %q", ErrUnknownNode, fields[0])}
		}
		community, err := strconv.Atoi(fields[1])
		if err != nil || community < 0 {
			return &ParseError{Line: line, Cause: fmt.Errorf("%w: %q", ErrInvalidCommunity, fields[1])}
		}
		if assigned[node] && p[node] != community {
			return &ParseError{Line: line, Cause: fmt.Errorf("%w: %q assigned to both %d and %d", ErrMalformedLine, fields[0], p[node], community)}
		}

		p[node] = community
		assigned[node] = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	for node, ok := range assigned {
		if !ok {
			return nil, &ParseError{Cause: fmt.Errorf("%w: %q", ErrUnassignedNode, g.Label(node))}
		}
	}
	return p, nil
}

func scanLines(r io.Reader, fn func(line int, fields []string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := fn(line, strings.Fields(text)); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// withPath stamps path onto a ParseError, or wraps other errors with it.
func withPath(err error, path string) error {
	if err == nil {
		return nil
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Path = path
		return pe
	}
	return fmt.Errorf("%s: %w", path, err)
}
