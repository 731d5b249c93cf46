package ffpart

import "fmt"

// Options configures a Partition/PartitionWithDetails call.
//
// Fields:
//
//	PackLayerBound - caps binpack.Packer's perfect-packing DP depth; 0
//	                 means binpack.DefaultLayerBound, and a negative
//	                 value is rejected by Validate.
type Options struct {
	PackLayerBound int
}

// DefaultOptions returns an Options struct pre-populated with safe
// defaults.
//
//	PackLayerBound: 0  // binpack.DefaultLayerBound
func DefaultOptions() Options {
	return Options{PackLayerBound: 0}
}

// Validate checks that Options holds a sensible combination of fields.
func (o *Options) Validate() error {
	if o.PackLayerBound < 0 {
		return fmt.Errorf("ffpart: PackLayerBound must be >= 0, got %d", o.PackLayerBound)
	}

	return nil
}

// Option mutates an Options struct; functional options compose via
// Partition/PartitionWithDetails's variadic opts parameter.
type Option func(*Options)

// WithPackLayerBound overrides the packer's perfect-packing DP depth cap.
func WithPackLayerBound(n int) Option {
	return func(o *Options) { o.PackLayerBound = n }
}
