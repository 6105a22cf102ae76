package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestBenefitsUnmarshalAcceptsListAndText(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  Benefits
	}{
		{"array", `["Relaja", " ", "Descansa"]`, Benefits{"Relaja", "Descansa"}},
		{"newline text", `"Relaja\n\n  Descansa  \n"`, Benefits{"Relaja", "Descansa"}},
		{"json text", `"[\"Uno\",\"Dos\"]"`, Benefits{"Uno", "Dos"}},
		{"null", `null`, Benefits{}},
	}

	for _, tc := range cases {
		var got Benefits
		if err := json.Unmarshal([]byte(tc.input), &got); err != nil {
			t.Fatalf("%s: unmarshal: %v", tc.name, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestBenefitsScanRoundTrip(t *testing.T) {
	value, err := Benefits{"Uno", "Dos"}.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	var scanned Benefits
	if err := scanned.Scan([]byte(value.(string))); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !reflect.DeepEqual(scanned, Benefits{"Uno", "Dos"}) {
		t.Errorf("unexpected scan result %v", scanned)
	}
	if err := scanned.Scan(42); err == nil {
		t.Errorf("expected error for unsupported type")
	}
}

func TestNormalizeFechaAndHora(t *testing.T) {
	fecha, err := NormalizeFecha("2025-03-10 00:00:00")
	if err != nil || fecha != "2025-03-10" {
		t.Fatalf("expected 2025-03-10, got %q (%v)", fecha, err)
	}
	if _, err := NormalizeFecha("2025-02-30"); err == nil {
		t.Errorf("expected invalid calendar day to fail")
	}
	hora, err := NormalizeHora("10:00:00")
	if err != nil || hora != "10:00" {
		t.Fatalf("expected 10:00, got %q (%v)", hora, err)
	}
	if _, err := NormalizeHora("25:00"); err == nil {
		t.Errorf("expected invalid hour to fail")
	}
}

func TestNormalizeRangeDeduplicates(t *testing.T) {
	dates, hours, err := NormalizeRange(
		[]string{"2025-03-11", "2025-03-10", "2025-03-11"},
		[]string{"10:00", "10:00:00", "11:00"},
	)
	if err != nil {
		t.Fatalf("NormalizeRange: %v", err)
	}
	if !reflect.DeepEqual(dates, []string{"2025-03-11", "2025-03-10"}) {
		t.Errorf("unexpected dates %v", dates)
	}
	if !reflect.DeepEqual(hours, []string{"10:00", "11:00"}) {
		t.Errorf("unexpected hours %v", hours)
	}
}

func TestCitaTransitions(t *testing.T) {
	cases := []struct {
		from, to CitaEstado
		ok       bool
	}{
		{EstadoPendiente, EstadoConfirmada, true},
		{EstadoPendiente, EstadoCancelada, true},
		{EstadoConfirmada, EstadoPendiente, true},
		{EstadoConfirmada, EstadoCancelada, true},
		{EstadoCancelada, EstadoPendiente, false},
		{EstadoPendiente, EstadoPendiente, true},
		{EstadoPendiente, "completada", false},
	}
	for _, tc := range cases {
		cita := Cita{Estado: tc.from}
		err := cita.CanTransition(tc.to)
		if tc.ok && err != nil {
			t.Errorf("%s -> %s: unexpected error %v", tc.from, tc.to, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s -> %s: expected error", tc.from, tc.to)
		}
	}
}
