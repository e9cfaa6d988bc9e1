package enums

import "fmt"

// FuelType represents the drivetrain energy source shown on a listing.
type FuelType string

const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
)

var validFuelTypes = []FuelType{
	FuelPetrol,
	FuelDiesel,
	FuelElectric,
	FuelHybrid,
}

// String implements fmt.Stringer.
func (f FuelType) String() string {
	return string(f)
}

// IsValid reports whether the fuel type is recognized.
func (f FuelType) IsValid() bool {
	for _, candidate := range validFuelTypes {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFuelType converts a raw string into a FuelType.
func ParseFuelType(value string) (FuelType, error) {
	for _, candidate := range validFuelTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid fuel type: %q", value)
}

// FuelTypes returns every recognized fuel type.
func FuelTypes() []FuelType {
	out := make([]FuelType, len(validFuelTypes))
	copy(out, validFuelTypes)
	return out
}
