// Package config loads a PartitionRequest — the parameters of one
// partition call (part count, imbalance ratio, optional root, packer
// layer bound) — from YAML, so callers can drive the partition driver
// from a config file instead of constructing parameters in code.
package config
