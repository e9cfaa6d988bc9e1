package storefront

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/yobeidat/obeidat-motors-backend/internal/cars"
)

const (
	defaultPriceMin   = 5000
	defaultPriceMax   = 250000
	defaultMileageMin = 0
	defaultMileageMax = 250000
	defaultYearSpan   = 12

	boundsStep = 1000
)

// PriceBounds is a closed price interval.
type PriceBounds struct {
	Min float64
	Max float64
}

// IntBounds is a closed integer interval.
type IntBounds struct {
	Min int
	Max int
}

// FilterBounds are the slider limits shown by the filter widget.
type FilterBounds struct {
	Price   PriceBounds
	Year    IntBounds
	Mileage IntBounds
}

// DefaultFilterBounds returns the static bounds used before inventory loads.
func DefaultFilterBounds() FilterBounds {
	currentYear := time.Now().Year()
	return FilterBounds{
		Price:   PriceBounds{Min: defaultPriceMin, Max: defaultPriceMax},
		Year:    IntBounds{Min: currentYear - defaultYearSpan, Max: currentYear},
		Mileage: IntBounds{Min: defaultMileageMin, Max: defaultMileageMax},
	}
}

// DeriveBounds computes widget bounds from the loaded inventory so no listing
// falls outside the slider ranges (future model years, unusually high prices).
// Listings with unparseable prices do not contribute to the price bounds.
func DeriveBounds(inventory []cars.CarDTO) FilterBounds {
	defaults := DefaultFilterBounds()
	if len(inventory) == 0 {
		return defaults
	}

	prices := make([]float64, 0, len(inventory))
	years := make([]int, 0, len(inventory))
	mileages := make([]int, 0, len(inventory))
	for i := range inventory {
		if price, err := strconv.ParseFloat(inventory[i].Price, 64); err == nil {
			prices = append(prices, price)
		}
		years = append(years, inventory[i].Year)
		mileages = append(mileages, inventory[i].Mileage)
	}

	rawMinPrice, rawMaxPrice := defaults.Price.Min, defaults.Price.Max
	if len(prices) > 0 {
		rawMinPrice, rawMaxPrice = minMaxFloat(prices)
	}
	minPrice := math.Max(0, roundDownFloat(rawMinPrice, boundsStep))
	maxPrice := math.Max(minPrice, roundUpFloat(rawMaxPrice, boundsStep))

	rawMinYear, rawMaxYear := minMaxInt(years)
	minYear := rawMinYear
	maxYear := rawMaxYear
	if minYear > maxYear {
		minYear, maxYear = maxYear, minYear
	}

	_, rawMaxMileage := minMaxInt(mileages)
	maxMileage := roundUpInt(rawMaxMileage, boundsStep)
	if maxMileage < defaults.Mileage.Min {
		maxMileage = defaults.Mileage.Min
	}

	return FilterBounds{
		Price:   PriceBounds{Min: minPrice, Max: maxPrice},
		Year:    IntBounds{Min: minYear, Max: maxYear},
		Mileage: IntBounds{Min: defaults.Mileage.Min, Max: maxMileage},
	}
}

// DefaultFilterValues seeds the selections to the full span of bounds.
func DefaultFilterValues(bounds FilterBounds) FilterValues {
	return FilterValues{
		Makes:        []string{},
		MinPrice:     bounds.Price.Min,
		MaxPrice:     bounds.Price.Max,
		YearRange:    [2]int{bounds.Year.Min, bounds.Year.Max},
		MileageRange: [2]int{bounds.Mileage.Min, bounds.Mileage.Max},
		FuelTypes:    []string{},
		Search:       "",
	}
}

// MakeOptions returns the distinct makes present in the inventory, sorted.
func MakeOptions(inventory []cars.CarDTO) []string {
	seen := make(map[string]struct{}, len(inventory))
	options := make([]string, 0, len(inventory))
	for i := range inventory {
		name := inventory[i].Make
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		options = append(options, name)
	}
	sort.Strings(options)
	return options
}

func roundDownFloat(value, step float64) float64 {
	return math.Floor(value/step) * step
}

func roundUpFloat(value, step float64) float64 {
	return math.Ceil(value/step) * step
}

func roundUpInt(value, step int) int {
	if value <= 0 {
		return 0
	}
	return ((value + step - 1) / step) * step
}

func minMaxFloat(values []float64) (float64, float64) {
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func minMaxInt(values []int) (int, int) {
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
