// Package captions re-segments timed word streams into display-ready caption
// segments and reconciles corrected transcript text onto the original word
// timeline.
//
// The engine is pure and synchronous: it holds no state between calls, never
// mutates its inputs, and produces identical output for identical input.
// Timestamps are preserved, never fabricated — corrected text that has no
// matching original word is folded into an existing time slot, and deleted
// words keep their slot with empty text.
//
// Segmentation layers run strictly in order: sentence-level splitting on
// strong punctuation, an optional pluggable sentence-boundary capability,
// scored mid-run boundary selection, and a balanced word-count fallback that
// always terminates. A final merge pass folds fragments into their
// neighbors.
package captions
