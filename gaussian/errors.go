// SPDX-License-Identifier: MIT

package gaussian

import "errors"

// ErrNonPositiveVarianceDifference is returned by LogRatioNormalization when
// the denominator's variance does not exceed the numerator's. Such inputs
// cannot come from a consistent marginal/message pair.
var ErrNonPositiveVarianceDifference = errors.New("gaussian: non-positive variance difference")
