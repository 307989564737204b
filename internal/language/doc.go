// Package language holds the immutable per-language caption profiles: weak
// punctuation, conjunctions, sentence starters, and script width class. The
// registry is built once at init and only read afterwards, so concurrent
// lookups need no synchronization.
package language
