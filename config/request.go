package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ffpart/rational"
)

// PartitionRequest is the YAML-decodable description of one partition
// call: the target part count, the imbalance ratio ε expressed as an
// exact fraction, an optional fixed root, and a packer layer bound
// override.
type PartitionRequest struct {
	KParts         int   `yaml:"k_parts"`
	EpsNum         int64 `yaml:"eps_num"`
	EpsDenom       int64 `yaml:"eps_denom"`
	RootID         *int  `yaml:"root_id,omitempty"`
	PackLayerBound int   `yaml:"pack_layer_bound,omitempty"`
}

// Eps returns the request's imbalance ratio as an exact rational.
func (r PartitionRequest) Eps() (rational.Rat, error) {
	return rational.FromInts(r.EpsNum, r.EpsDenom)
}

// Validate checks that the request's numeric fields describe a sensible
// partition call, independent of any particular tree.
func (r PartitionRequest) Validate() error {
	if r.KParts < 2 {
		return fmt.Errorf("%w: k_parts must be >= 2, got %d", ErrInvalidRequest, r.KParts)
	}
	if r.EpsDenom <= 0 {
		return fmt.Errorf("%w: eps_denom must be > 0, got %d", ErrInvalidRequest, r.EpsDenom)
	}
	if r.EpsNum <= 0 {
		return fmt.Errorf("%w: eps_num must be > 0, got %d", ErrInvalidRequest, r.EpsNum)
	}

	return nil
}

// Load decodes a single PartitionRequest from YAML read from r, then
// validates it.
func Load(r io.Reader) (PartitionRequest, error) {
	var req PartitionRequest
	if err := yaml.NewDecoder(r).Decode(&req); err != nil {
		return PartitionRequest{}, fmt.Errorf("config: decode partition request: %w", err)
	}
	if err := req.Validate(); err != nil {
		return PartitionRequest{}, err
	}

	return req, nil
}
