package storefront

import "github.com/yobeidat/obeidat-motors-backend/pkg/enums"

// Quick-select presets mirroring the chips in the filter widget. A preset is
// active only when the current selection equals its range exactly.

// PricePreset is a fixed price window clamped to the widget bounds.
type PricePreset struct {
	Label string
	Min   float64
	Max   float64
}

// Apply sets the price window on a copy of the values.
func (p PricePreset) Apply(values FilterValues) FilterValues {
	values.MinPrice = p.Min
	values.MaxPrice = p.Max
	return values
}

// IsActive reports whether the selection matches this preset exactly.
func (p PricePreset) IsActive(values FilterValues) bool {
	return values.MinPrice == p.Min && values.MaxPrice == p.Max
}

// YearPreset is a fixed model-year window.
type YearPreset struct {
	Label string
	Range [2]int
}

func (p YearPreset) Apply(values FilterValues) FilterValues {
	values.YearRange = p.Range
	return values
}

func (p YearPreset) IsActive(values FilterValues) bool {
	return values.YearRange == p.Range
}

// MileagePreset is a fixed mileage window.
type MileagePreset struct {
	Label string
	Range [2]int
}

func (p MileagePreset) Apply(values FilterValues) FilterValues {
	values.MileageRange = p.Range
	return values
}

func (p MileagePreset) IsActive(values FilterValues) bool {
	return values.MileageRange == p.Range
}

// FuelPreset selects one or more fuel types as a group.
type FuelPreset struct {
	Label  string
	Values []string
}

func (p FuelPreset) Apply(values FilterValues) FilterValues {
	values.FuelTypes = append([]string{}, p.Values...)
	return values
}

// IsActive reports whether every fuel in the group is currently selected.
func (p FuelPreset) IsActive(values FilterValues) bool {
	for _, fuel := range p.Values {
		if !contains(values.FuelTypes, fuel) {
			return false
		}
	}
	return true
}

// PricePresets returns the price chips for the given bounds.
func PricePresets(bounds FilterBounds) []PricePreset {
	return []PricePreset{
		{Label: "Under 65,000", Min: bounds.Price.Min, Max: 65000},
		{Label: "65,000 – 100,000", Min: 65000, Max: 100000},
		{Label: "100,000 – 200,000", Min: 100000, Max: 200000},
		{Label: "Above 200,000", Min: 200000, Max: bounds.Price.Max},
	}
}

// YearPresets returns the model-year chips clamped to the given bounds.
func YearPresets(bounds FilterBounds) []YearPreset {
	recentMin := bounds.Year.Max - 2
	if recentMin < bounds.Year.Min {
		recentMin = bounds.Year.Min
	}
	since2018 := 2018
	if since2018 < bounds.Year.Min {
		since2018 = bounds.Year.Min
	}
	from2014 := 2014
	if from2014 < bounds.Year.Min {
		from2014 = bounds.Year.Min
	}
	to2019 := 2019
	if to2019 > bounds.Year.Max {
		to2019 = bounds.Year.Max
	}
	return []YearPreset{
		{Label: "Last two years", Range: [2]int{recentMin, bounds.Year.Max}},
		{Label: "2018 and newer", Range: [2]int{since2018, bounds.Year.Max}},
		{Label: "2014 – 2019", Range: [2]int{from2014, to2019}},
	}
}

// MileagePresets returns the mileage chips for the given bounds.
func MileagePresets(bounds FilterBounds) []MileagePreset {
	return []MileagePreset{
		{Label: "Under 25,000 km", Range: [2]int{bounds.Mileage.Min, 25000}},
		{Label: "25,000 – 60,000 km", Range: [2]int{25000, 60000}},
		{Label: "60,000 – 120,000 km", Range: [2]int{60000, 120000}},
		{Label: "Above 120,000 km", Range: [2]int{120000, bounds.Mileage.Max}},
	}
}

// FuelPresets returns the fuel group chips.
func FuelPresets() []FuelPreset {
	return []FuelPreset{
		{Label: "Petrol", Values: []string{enums.FuelPetrol.String()}},
		{Label: "Diesel", Values: []string{enums.FuelDiesel.String()}},
		{Label: "Electric & hybrid", Values: []string{enums.FuelElectric.String(), enums.FuelHybrid.String()}},
	}
}
