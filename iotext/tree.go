package iotext

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadTree parses the tree text format: line 1 is "node_count root_id",
// followed by node_count-1 lines of "from_id to_id edge_weight". It
// returns the resulting symmetric adjacency map and the declared root id.
func ReadTree(r io.Reader) (map[int]map[int]int64, int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	if !sc.Scan() {
		return nil, 0, fmt.Errorf("%w: empty input", ErrMalformedFixture)
	}
	header := strings.Fields(sc.Text())
	if len(header) != 2 {
		return nil, 0, fmt.Errorf("%w: header must have 2 fields, got %d", ErrMalformedFixture, len(header))
	}
	nodeCount, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, 0, fmt.Errorf("%w: node_count: %w", ErrMalformedFixture, err)
	}
	rootID, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, 0, fmt.Errorf("%w: root_id: %w", ErrMalformedFixture, err)
	}

	adj := make(map[int]map[int]int64)
	addEdge := func(u, v int, w int64) {
		if adj[u] == nil {
			adj[u] = make(map[int]int64)
		}
		if adj[v] == nil {
			adj[v] = make(map[int]int64)
		}
		adj[u][v] = w
		adj[v][u] = w
	}

	for i := 0; i < nodeCount-1; i++ {
		if !sc.Scan() {
			return nil, 0, fmt.Errorf("%w: expected %d edge lines, got %d", ErrMalformedFixture, nodeCount-1, i)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 3 {
			return nil, 0, fmt.Errorf("%w: edge line must have 3 fields, got %d", ErrMalformedFixture, len(fields))
		}
		from, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, 0, fmt.Errorf("%w: from_id: %w", ErrMalformedFixture, err)
		}
		to, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, 0, fmt.Errorf("%w: to_id: %w", ErrMalformedFixture, err)
		}
		weight, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: edge_weight: %w", ErrMalformedFixture, err)
		}
		addEdge(from, to, weight)
	}

	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrMalformedFixture, err)
	}

	return adj, rootID, nil
}
