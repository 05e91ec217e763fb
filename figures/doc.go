// Package figures defines the textbook figures: FIR vs. IIR impulse
// responses, a pulse-train autocorrelation, the effect of clipping and
// windowing on a power spectrum, and linear vs. median smoothing.
//
// Every figure is split into a data builder that returns plain slices and a
// render step that lays them out with package figure. The builders are
// deterministic, so the same call always yields bit-identical arrays.
package figures
