// SPDX-License-Identifier: MIT

package revenue

import "fmt"

// Statistics counts the work done by one calculation.
type Statistics struct {
	Evaluations    int // complete assignments evaluated
	Predictions    int // bound computations
	Pruned         int // branches cut by the bound
	EdgesTravelled int // edge travels
	Improvements   int // strict improvements of the best value
}

// String implements fmt.Stringer.
func (s Statistics) String() string {
	return fmt.Sprintf("evaluations=%d predictions=%d pruned=%d edges=%d improvements=%d",
		s.Evaluations, s.Predictions, s.Pruned, s.EdgesTravelled, s.Improvements)
}
