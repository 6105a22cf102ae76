package client

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseFlag(t *testing.T) {
	cases := map[string]bool{
		`true`:    true,
		`false`:   false,
		`1`:       true,
		`0`:       false,
		`2`:       true,
		`"1"`:     true,
		`"0"`:     false,
		`"true"`:  true,
		`"false"`: false,
		`null`:    false,
	}
	for raw, want := range cases {
		got, err := ParseFlag([]byte(raw))
		if err != nil {
			t.Errorf("ParseFlag(%s): %v", raw, err)
			continue
		}
		if got != want {
			t.Errorf("ParseFlag(%s) = %v, want %v", raw, got, want)
		}
	}
	if _, err := ParseFlag([]byte(`"maybe"`)); err == nil {
		t.Errorf("expected error for non-boolean string")
	}
}

func TestSlotDecodesNumericFlags(t *testing.T) {
	var slots []Slot
	raw := `[{"fecha":"2025-03-10","hora":"10:00","activo":1,"ocupada":0},
		{"fecha":"2025-03-10","hora":"11:00","activo":true,"ocupada":"1"}]`
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !slots[0].Activo.Bool() || slots[0].Ocupada.Bool() {
		t.Errorf("first slot = %+v", slots[0])
	}
	if !slots[1].Activo.Bool() || !slots[1].Ocupada.Bool() {
		t.Errorf("second slot = %+v", slots[1])
	}
}

func TestBenefitsShapes(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"array", `["Relaja", " ", "Descansa"]`, []string{"Relaja", "Descansa"}},
		{"lines", `"Relaja\n\n Descansa \n"`, []string{"Relaja", "Descansa"}},
		{"encoded array", `"[\"Relaja\",\"Descansa\"]"`, []string{"Relaja", "Descansa"}},
		{"null", `null`, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got Benefits
			if err := json.Unmarshal([]byte(tc.raw), &got); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if !reflect.DeepEqual([]string(got), tc.want) {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
