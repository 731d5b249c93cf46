package config

import "errors"

// ErrInvalidRequest indicates a PartitionRequest failed validation: a
// KParts below 2, a non-positive EpsDenom, or a non-positive EpsNum.
var ErrInvalidRequest = errors.New("config: invalid partition request")
