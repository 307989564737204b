// Package sentence provides a Punkt-based implementation of the engine's
// pluggable sentence-boundary capability. Languages without trained data
// report as unsupported and the engine degrades to its punctuation and
// fallback layers.
package sentence
