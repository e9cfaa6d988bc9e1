package enums

import "fmt"

// Gearbox represents the transmission variants listings advertise.
type Gearbox string

const (
	GearboxAutomatic Gearbox = "Automatic"
	GearboxManual    Gearbox = "Manual"
)

var validGearboxes = []Gearbox{
	GearboxAutomatic,
	GearboxManual,
}

// String implements fmt.Stringer.
func (g Gearbox) String() string {
	return string(g)
}

// IsValid reports whether the gearbox is recognized.
func (g Gearbox) IsValid() bool {
	for _, candidate := range validGearboxes {
		if candidate == g {
			return true
		}
	}
	return false
}

// ParseGearbox converts a raw string into a Gearbox.
func ParseGearbox(value string) (Gearbox, error) {
	for _, candidate := range validGearboxes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid gearbox: %q", value)
}
