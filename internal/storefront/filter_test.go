package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yobeidat/obeidat-motors-backend/internal/cars"
)

func wideOpenValues() FilterValues {
	return FilterValues{
		Makes:        []string{},
		MinPrice:     0,
		MaxPrice:     1000000,
		YearRange:    [2]int{1990, 2100},
		MileageRange: [2]int{0, 1000000},
		FuelTypes:    []string{},
		Search:       "",
	}
}

func sampleInventory() []cars.CarDTO {
	return []cars.CarDTO{
		{
			Title: "Toyota Corolla 2020", Price: "14500.00", Currency: "JOD",
			Mileage: 42000, Year: 2020, Make: "Toyota", Gearbox: "Automatic",
			Engine: "1.6L", Drive: "FWD", Fuel: "Petrol", Color: "White",
			Origin: "GCC", Description: "Reliable daily driver",
		},
		{
			Title: "BMW 530e 2022", Price: "48000.00", Currency: "JOD",
			Mileage: 12000, Year: 2022, Make: "BMW", Gearbox: "Automatic",
			Engine: "2.0L plug-in", Drive: "RWD", Fuel: "Hybrid", Color: "Black",
			Origin: "Europe", Description: "Executive sedan",
		},
		{
			Title: "Mercedes-Benz G63", Price: "not-a-price", Currency: "JOD",
			Mileage: 8000, Year: 2023, Make: "Mercedes-Benz", Gearbox: "Automatic",
			Engine: "4.0L V8", Drive: "4WD", Fuel: "Petrol", Color: "Silver",
			Origin: "Europe", Description: "Price on request",
		},
	}
}

func TestFilterByMake(t *testing.T) {
	inventory := sampleInventory()
	values := wideOpenValues()
	values.Makes = []string{"Toyota"}

	result := Filter(inventory, values)
	require.Len(t, result, 1)
	assert.Equal(t, "Toyota", result[0].Make)
}

func TestFilterByPriceWindow(t *testing.T) {
	inventory := sampleInventory()
	values := wideOpenValues()
	values.MinPrice = 20000
	values.MaxPrice = 60000

	result := Filter(inventory, values)
	require.Len(t, result, 1)
	assert.Equal(t, "BMW", result[0].Make)
}

func TestFilterExcludesUnparseablePrice(t *testing.T) {
	inventory := sampleInventory()
	result := Filter(inventory, wideOpenValues())

	require.Len(t, result, 2)
	for _, car := range result {
		assert.NotEqual(t, "Mercedes-Benz", car.Make)
	}
}

func TestFilterByYearAndMileage(t *testing.T) {
	inventory := sampleInventory()

	values := wideOpenValues()
	values.YearRange = [2]int{2021, 2023}
	result := Filter(inventory, values)
	require.Len(t, result, 1)
	assert.Equal(t, 2022, result[0].Year)

	values = wideOpenValues()
	values.MileageRange = [2]int{0, 20000}
	result = Filter(inventory, values)
	require.Len(t, result, 1)
	assert.Equal(t, 12000, result[0].Mileage)
}

func TestFilterByFuelGroup(t *testing.T) {
	inventory := sampleInventory()
	values := wideOpenValues()
	values.FuelTypes = []string{"Electric", "Hybrid"}

	result := Filter(inventory, values)
	require.Len(t, result, 1)
	assert.Equal(t, "Hybrid", result[0].Fuel)
}

func TestFilterBySearchTerm(t *testing.T) {
	inventory := sampleInventory()

	values := wideOpenValues()
	values.Search = "  EXECUTIVE "
	result := Filter(inventory, values)
	require.Len(t, result, 1)
	assert.Equal(t, "BMW", result[0].Make)

	// year and mileage are searchable as text
	values = wideOpenValues()
	values.Search = "42000"
	result = Filter(inventory, values)
	require.Len(t, result, 1)
	assert.Equal(t, "Toyota", result[0].Make)

	// blank search is no constraint
	values = wideOpenValues()
	values.Search = "   "
	assert.Len(t, Filter(inventory, values), 2)
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	inventory := sampleInventory()
	original := make([]cars.CarDTO, len(inventory))
	copy(original, inventory)

	values := wideOpenValues()
	first := Filter(inventory, values)
	second := Filter(inventory, values)

	assert.Equal(t, original, inventory, "input slice must not be mutated")
	assert.Equal(t, first, second, "filtering must be deterministic")

	require.Len(t, first, 2)
	assert.Equal(t, "Toyota", first[0].Make)
	assert.Equal(t, "BMW", first[1].Make)
}

func TestSearchTextSkipsEmptyFields(t *testing.T) {
	car := cars.CarDTO{Title: "Mazda 6", Make: "Mazda", Year: 2017, Mileage: 95000}
	text := SearchText(&car)

	assert.Equal(t, "mazda 6 mazda 2017 95000", text)
}
