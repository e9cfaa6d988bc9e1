package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBounds() FilterBounds {
	return FilterBounds{
		Price:   PriceBounds{Min: 5000, Max: 250000},
		Year:    IntBounds{Min: 2012, Max: 2024},
		Mileage: IntBounds{Min: 0, Max: 250000},
	}
}

func TestPricePresetExactEquality(t *testing.T) {
	presets := PricePresets(testBounds())
	require.NotEmpty(t, presets)

	values := DefaultFilterValues(testBounds())
	applied := presets[0].Apply(values)

	assert.True(t, presets[0].IsActive(applied))
	for _, other := range presets[1:] {
		assert.False(t, other.IsActive(applied))
	}

	// one unit off is no longer active
	applied.MaxPrice++
	assert.False(t, presets[0].IsActive(applied))
}

func TestYearPresetsClampToBounds(t *testing.T) {
	bounds := testBounds()
	bounds.Year = IntBounds{Min: 2019, Max: 2024}

	presets := YearPresets(bounds)
	require.Len(t, presets, 3)

	// "since 2018" clamps up to the lower bound
	assert.Equal(t, [2]int{2019, 2024}, presets[1].Range)
	// "2014-2019" clamps both ends
	assert.Equal(t, [2]int{2019, 2019}, presets[2].Range)

	values := DefaultFilterValues(bounds)
	applied := presets[0].Apply(values)
	assert.Equal(t, [2]int{2022, 2024}, applied.YearRange)
	assert.True(t, presets[0].IsActive(applied))
}

func TestMileagePresetApply(t *testing.T) {
	presets := MileagePresets(testBounds())
	values := DefaultFilterValues(testBounds())

	applied := presets[0].Apply(values)
	assert.Equal(t, [2]int{0, 25000}, applied.MileageRange)
	assert.True(t, presets[0].IsActive(applied))
	assert.False(t, presets[1].IsActive(applied))
}

func TestFuelPresetGroupMembership(t *testing.T) {
	presets := FuelPresets()
	require.Len(t, presets, 3)

	values := DefaultFilterValues(testBounds())
	applied := presets[2].Apply(values)
	assert.ElementsMatch(t, []string{"Electric", "Hybrid"}, applied.FuelTypes)
	assert.True(t, presets[2].IsActive(applied))
	assert.False(t, presets[0].IsActive(applied))

	// a group is active only when every member is selected
	applied.FuelTypes = []string{"Electric"}
	assert.False(t, presets[2].IsActive(applied))

	// extra selections do not deactivate a fully-covered group; the widget
	// keeps the Petrol chip checked while Petrol and Diesel are both selected
	applied.FuelTypes = []string{"Petrol", "Diesel"}
	assert.True(t, presets[0].IsActive(applied))
	assert.True(t, presets[1].IsActive(applied))
	assert.False(t, presets[2].IsActive(applied))
}
