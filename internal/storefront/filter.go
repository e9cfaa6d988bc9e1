// Package storefront implements the consumer-side inventory experience: the
// read client against the public API plus the filter widget model (matching,
// bounds derivation, presets and per-visitor filter state).
package storefront

import (
	"strconv"
	"strings"

	"github.com/yobeidat/obeidat-motors-backend/internal/cars"
)

// FilterValues holds one visitor's active filter selections.
type FilterValues struct {
	Makes        []string
	MinPrice     float64
	MaxPrice     float64
	YearRange    [2]int
	MileageRange [2]int
	FuelTypes    []string
	Search       string
}

// Filter returns the cars matching every active constraint. The result
// preserves the inventory order and the input slice is never mutated.
func Filter(inventory []cars.CarDTO, values FilterValues) []cars.CarDTO {
	matched := make([]cars.CarDTO, 0, len(inventory))
	for i := range inventory {
		if matches(&inventory[i], values) {
			matched = append(matched, inventory[i])
		}
	}
	return matched
}

func matches(car *cars.CarDTO, values FilterValues) bool {
	if len(values.Makes) > 0 && !contains(values.Makes, car.Make) {
		return false
	}

	// a listing whose price does not parse can never satisfy a price window
	price, err := strconv.ParseFloat(car.Price, 64)
	if err != nil {
		return false
	}
	if price < values.MinPrice || price > values.MaxPrice {
		return false
	}

	if car.Year < values.YearRange[0] || car.Year > values.YearRange[1] {
		return false
	}
	if car.Mileage < values.MileageRange[0] || car.Mileage > values.MileageRange[1] {
		return false
	}

	if len(values.FuelTypes) > 0 && !contains(values.FuelTypes, car.Fuel) {
		return false
	}

	if term := strings.ToLower(strings.TrimSpace(values.Search)); term != "" {
		if !strings.Contains(SearchText(car), term) {
			return false
		}
	}

	return true
}

// SearchText builds the lower-cased haystack the free-text filter scans.
func SearchText(car *cars.CarDTO) string {
	fields := []string{
		car.Title,
		car.Make,
		car.Color,
		car.Drive,
		car.Fuel,
		car.Description,
		car.Engine,
		strconv.Itoa(car.Year),
		strconv.Itoa(car.Mileage),
	}
	parts := fields[:0]
	for _, field := range fields {
		if field != "" {
			parts = append(parts, field)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
