package enums

import "testing"

func TestFuelTypeRoundTrip(t *testing.T) {
	for _, fuel := range FuelTypes() {
		parsed, err := ParseFuelType(fuel.String())
		if err != nil {
			t.Fatalf("parse %q: %v", fuel, err)
		}
		if parsed != fuel {
			t.Fatalf("expected %q, got %q", fuel, parsed)
		}
		if !parsed.IsValid() {
			t.Fatalf("expected %q to be valid", parsed)
		}
	}

	if _, err := ParseFuelType("Steam"); err == nil {
		t.Fatal("expected error for unknown fuel type")
	}
	if FuelType("petrol").IsValid() {
		t.Fatal("fuel types are case sensitive")
	}
}

func TestGearboxAndDriveParsing(t *testing.T) {
	if _, err := ParseGearbox("Automatic"); err != nil {
		t.Fatalf("parse gearbox: %v", err)
	}
	if _, err := ParseGearbox("CVT"); err == nil {
		t.Fatal("expected error for unknown gearbox")
	}

	if _, err := ParseDriveType("4WD"); err != nil {
		t.Fatalf("parse drive type: %v", err)
	}
	if _, err := ParseDriveType("6WD"); err == nil {
		t.Fatal("expected error for unknown drive type")
	}
}

func TestCurrencyDefaults(t *testing.T) {
	if !CurrencyJOD.IsValid() {
		t.Fatal("expected JOD to be valid")
	}
	if _, err := ParseCurrency("BTC"); err == nil {
		t.Fatal("expected error for unsupported currency")
	}
}
