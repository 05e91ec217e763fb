// Package signal synthesizes the small deterministic test signals used by
// the figures: impulses, steps, rectangular pulses, and sampled cosines,
// plus in-place edits such as clipping a range to zero or injecting spikes.
package signal
