// Package window generates tapering windows and applies them to signal
// segments.
//
// Windows are symmetric by default (w[0] == w[N-1], the form used for
// filter design and for illustrating leakage on a finite segment);
// [WithPeriodic] selects the DFT-even form.
package window
