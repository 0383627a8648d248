package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"statplot/table"
	"statplot/utils"
)

func TestTips(t *testing.T) {
	tips, err := Tips()
	assert.NoError(t, err)
	utils.AssertTrue(t, tips.NumRows() > 50)

	days, err := tips.Strings("day")
	assert.NoError(t, err)
	seen := make(map[string]bool)
	for _, day := range days {
		seen[day] = true
	}
	for _, day := range []string{"Thur", "Fri", "Sat", "Sun"} {
		utils.AssertTrue(t, seen[day])
	}

	kind, err := tips.Kind("tip")
	assert.NoError(t, err)
	utils.AssertEqual(t, kind, table.Float)
}

func TestCars(t *testing.T) {
	cars, err := Cars()
	assert.NoError(t, err)
	utils.AssertTrue(t, cars.NumRows() > 30)
	utils.AssertTrue(t, cars.Has("class"))
	utils.AssertTrue(t, !cars.Has("model")) // not in the declared schema

	hwy, err := cars.Floats("hwy")
	assert.NoError(t, err)
	for _, v := range hwy {
		utils.AssertTrue(t, v > 0)
	}
}
