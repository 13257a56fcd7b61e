package device

import (
	"errors"
	"strings"
	"testing"
)

func TestNew_AllKinds(t *testing.T) {
	tests := []struct {
		name        string
		kind        Kind
		id          string
		statusToken string
	}{
		{
			name:        "light starts off",
			kind:        KindLight,
			id:          "lamp-1",
			statusToken: "off",
		},
		{
			name:        "thermostat starts at default setpoint",
			kind:        KindThermostat,
			id:          "therm-1",
			statusToken: "70",
		},
		{
			name:        "door lock starts locked",
			kind:        KindDoorLock,
			id:          "door-1",
			statusToken: "locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, err := New(tt.kind, tt.id)
			if err != nil {
				t.Fatalf("New(%q, %q) error = %v", tt.kind, tt.id, err)
			}

			if dev.ID() != tt.id {
				t.Errorf("ID() = %q, want %q", dev.ID(), tt.id)
			}
			if dev.Kind() != tt.kind {
				t.Errorf("Kind() = %q, want %q", dev.Kind(), tt.kind)
			}

			status := dev.Status()
			if !strings.Contains(status, tt.id) {
				t.Errorf("Status() = %q, want it to contain the device ID %q", status, tt.id)
			}
			if !strings.Contains(status, tt.statusToken) {
				t.Errorf("Status() = %q, want it to contain %q", status, tt.statusToken)
			}
		})
	}
}

func TestNew_UnknownKind(t *testing.T) {
	for _, token := range []string{"unknown", "", "Light", "LIGHT", "doorlock", "speaker"} {
		t.Run("token "+token, func(t *testing.T) {
			dev, err := New(Kind(token), "1")
			if !errors.Is(err, ErrUnknownKind) {
				t.Errorf("New(%q) error = %v, want ErrUnknownKind", token, err)
			}
			if dev != nil {
				t.Errorf("New(%q) returned a device; unknown kinds must not produce a fallback", token)
			}
		})
	}
}

func TestNewFromToken(t *testing.T) {
	dev, err := NewFromToken("thermostat", "2")
	if err != nil {
		t.Fatalf("NewFromToken() error = %v", err)
	}
	if _, ok := dev.(*Thermostat); !ok {
		t.Errorf("NewFromToken(thermostat) = %T, want *Thermostat", dev)
	}

	if _, err := NewFromToken("toaster", "9"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("NewFromToken(toaster) error = %v, want ErrUnknownKind", err)
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range AllKinds() {
		parsed, err := ParseKind(string(kind))
		if err != nil {
			t.Errorf("ParseKind(%q) error = %v", kind, err)
		}
		if parsed != kind {
			t.Errorf("ParseKind(%q) = %q", kind, parsed)
		}
	}

	if _, err := ParseKind("fridge"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(fridge) error = %v, want ErrUnknownKind", err)
	}
}
