// Package transcript carries the wire shapes exchanged with the ASR and
// text-correction collaborators and drives the caption engine across a whole
// transcript: JSON payload I/O, per-segment alignment and re-segmentation,
// and SRT rendering for downstream subtitle writers.
package transcript
