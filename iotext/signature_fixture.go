package iotext

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ffpart/rational"
	"github.com/katalvlaran/ffpart/signature"
)

// Fixture is a persisted signature-map test fixture: the part count and ε
// the maps were computed against, and each node's signature map keyed by
// node id.
type Fixture struct {
	PartCount int
	Eps       rational.Rat
	Nodes     map[int]*signature.Map
}

// ReadSignatureFixture parses the persisted signature format: line 1 is
// "part_cnt eps_num eps_denom". Then, repeated until end of input, one
// block per node: a "node_id size_count" line, followed by size_count
// frontier blocks of "frontier_size entry_count", each followed by
// entry_count lines of L signature coordinates and a cut cost. L is
// inferred from the first entry line encountered and must be consistent
// across the whole fixture.
func ReadSignatureFixture(r io.Reader) (*Fixture, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedFixture)
	}
	header := strings.Fields(sc.Text())
	if len(header) != 3 {
		return nil, fmt.Errorf("%w: header must have 3 fields, got %d", ErrMalformedFixture, len(header))
	}
	partCnt, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("%w: part_cnt: %w", ErrMalformedFixture, err)
	}
	epsNum, err := strconv.ParseInt(header[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: eps_num: %w", ErrMalformedFixture, err)
	}
	epsDenom, err := strconv.ParseInt(header[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: eps_denom: %w", ErrMalformedFixture, err)
	}
	eps, err := rational.FromInts(epsNum, epsDenom)
	if err != nil {
		return nil, fmt.Errorf("%w: eps: %w", ErrMalformedFixture, err)
	}

	nodes := make(map[int]*signature.Map)
	length := -1

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		nodeHeader := strings.Fields(line)
		if len(nodeHeader) != 2 {
			return nil, fmt.Errorf("%w: node header must have 2 fields, got %d", ErrMalformedFixture, len(nodeHeader))
		}
		nodeID, err := strconv.Atoi(nodeHeader[0])
		if err != nil {
			return nil, fmt.Errorf("%w: node_id: %w", ErrMalformedFixture, err)
		}
		sizeCount, err := strconv.Atoi(nodeHeader[1])
		if err != nil {
			return nil, fmt.Errorf("%w: size_count: %w", ErrMalformedFixture, err)
		}

		var m *signature.Map
		for b := 0; b < sizeCount; b++ {
			if !sc.Scan() {
				return nil, fmt.Errorf("%w: missing frontier block for node %d", ErrMalformedFixture, nodeID)
			}
			blockHeader := strings.Fields(sc.Text())
			if len(blockHeader) != 2 {
				return nil, fmt.Errorf("%w: frontier block header must have 2 fields", ErrMalformedFixture)
			}
			frontier, err := strconv.Atoi(blockHeader[0])
			if err != nil {
				return nil, fmt.Errorf("%w: frontier_size: %w", ErrMalformedFixture, err)
			}
			entryCount, err := strconv.Atoi(blockHeader[1])
			if err != nil {
				return nil, fmt.Errorf("%w: entry_count: %w", ErrMalformedFixture, err)
			}

			for e := 0; e < entryCount; e++ {
				if !sc.Scan() {
					return nil, fmt.Errorf("%w: missing entry line for node %d", ErrMalformedFixture, nodeID)
				}
				fields := strings.Fields(sc.Text())
				if length == -1 {
					length = len(fields) - 1
					if length < 1 {
						return nil, fmt.Errorf("%w: entry line too short", ErrMalformedFixture)
					}
				}
				if len(fields) != length+1 {
					return nil, fmt.Errorf("%w: entry must have %d fields, got %d", ErrMalformedFixture, length+1, len(fields))
				}

				sig := signature.New(length)
				for c := 0; c < length; c++ {
					v, err := strconv.Atoi(fields[c])
					if err != nil {
						return nil, fmt.Errorf("%w: signature coordinate: %w", ErrMalformedFixture, err)
					}
					sig[c] = int32(v)
				}
				cost, err := strconv.ParseInt(fields[length], 10, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: cut cost: %w", ErrMalformedFixture, err)
				}

				if m == nil {
					m = signature.NewMap(length)
				}
				m.Upsert(frontier, sig, cost)
			}
		}
		if m == nil {
			m = signature.NewMap(0)
		}
		nodes[nodeID] = m
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFixture, err)
	}

	return &Fixture{PartCount: partCnt, Eps: eps, Nodes: nodes}, nil
}
