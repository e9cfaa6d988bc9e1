package enums

import "fmt"

// DriveType represents which wheels receive power.
type DriveType string

const (
	DriveFWD        DriveType = "FWD"
	DriveRWD        DriveType = "RWD"
	DriveAWD        DriveType = "AWD"
	DriveFourByFour DriveType = "4WD"
)

var validDriveTypes = []DriveType{
	DriveFWD,
	DriveRWD,
	DriveAWD,
	DriveFourByFour,
}

// String implements fmt.Stringer.
func (d DriveType) String() string {
	return string(d)
}

// IsValid reports whether the drive type is recognized.
func (d DriveType) IsValid() bool {
	for _, candidate := range validDriveTypes {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDriveType converts a raw string into a DriveType.
func ParseDriveType(value string) (DriveType, error) {
	for _, candidate := range validDriveTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid drive type: %q", value)
}
