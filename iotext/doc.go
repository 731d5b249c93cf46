// Package iotext reads the two plain-text formats the partitioner's test
// fixtures are expressed in: an adjacency-list tree format, and a
// persisted signature-map format for golden signature-map fixtures.
// Neither format is written by this package; both are external test
// contracts the core must merely be able to consume.
package iotext
