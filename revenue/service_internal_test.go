// SPDX-License-Identifier: MIT

package revenue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/railrev/core"
	"github.com/katalvlaran/railrev/train"
)

func TestRequestKey(t *testing.T) {
	phase := core.Phase{Name: "3"}
	plain := train.MustParse("3")
	doubled := plain
	doubled.MajorMultiplier = 2
	longer := plain
	longer.Majors = 4

	key := requestKey("PR", phase, []train.Train{plain})
	assert.Equal(t, key, requestKey("PR", phase, []train.Train{train.MustParse("3")}))
	assert.NotEqual(t, key, requestKey("PR", phase, []train.Train{doubled}), "same name, other multiplier")
	assert.NotEqual(t, key, requestKey("PR", phase, []train.Train{longer}), "same name, other stop count")
	assert.NotEqual(t, key, requestKey("XX", phase, []train.Train{plain}))
	assert.NotEqual(t, key, requestKey("PR", core.Phase{Name: "4"}, []train.Train{plain}))
	assert.NotEqual(t, key, requestKey("PR", phase, []train.Train{plain, plain}))
}
