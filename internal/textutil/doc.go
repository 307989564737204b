// Package textutil provides text measurement and normalization helpers for
// caption processing.
//
// The primary use cases are:
//   - Measuring display width with double weighting for CJK-style scripts
//   - Normalizing tokens for alignment matching (case-folded, punctuation
//     stripped) without touching the text that reaches the viewer
//   - Reading-speed math over a timed text run
package textutil
