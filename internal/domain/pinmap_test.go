package domain

import "testing"

func TestDefaultPinMapMatchesReferenceBoard(t *testing.T) {
	m := DefaultPinMap()

	if m.Die1 != [3]Pin{3, 4, 5} {
		t.Errorf("die1 pins = %v, want [3 4 5]", m.Die1)
	}
	if m.Die2 != [3]Pin{8, 9, 10} {
		t.Errorf("die2 pins = %v, want [8 9 10]", m.Die2)
	}
	if m.Buzzer != 6 || m.Button1 != 2 || m.Button2 != 11 || m.Noise != 0 {
		t.Errorf("aux pins = buzzer=%d button1=%d button2=%d noise=%d", m.Buzzer, m.Button1, m.Button2, m.Noise)
	}

	if err := m.Validate(); err != nil {
		t.Fatalf("default pin map should validate, got %v", err)
	}
}

func TestPinMapValidateRejectsDuplicates(t *testing.T) {
	m := DefaultPinMap()
	m.Buzzer = m.Die1[0]

	err := m.Validate()
	if err == nil {
		t.Fatal("expected error for duplicate pin assignment")
	}
	if !IsKind(err, KindInvalidConfig) {
		t.Errorf("expected invalid_config kind, got %v", err)
	}
}

func TestPinMapValidateAllowsNoiseOverlap(t *testing.T) {
	// Analog channel numbers are a separate space; A0 overlapping a digital
	// pin number is fine.
	m := DefaultPinMap()
	m.Noise = m.Button1

	if err := m.Validate(); err != nil {
		t.Fatalf("noise channel overlap should validate, got %v", err)
	}
}
