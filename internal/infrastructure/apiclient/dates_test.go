package apiclient

import (
	"encoding/json"
	"testing"
	"time"
)

func TestApiDateDecodageTolerant(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339", `"2024-06-10T14:30:00Z"`, time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)},
		{"sans fuseau", `"2024-06-10T14:30:00"`, time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)},
		{"date seule", `"2024-06-10"`, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
		{"null", `null`, time.Time{}},
		{"vide", `""`, time.Time{}},
		{"illisible", `"10/06/2024"`, time.Time{}},
		{"pas une chaîne", `42`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d apiDate
			if err := json.Unmarshal([]byte(tt.raw), &d); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.raw, err)
			}
			if !d.Time().Equal(tt.want) {
				t.Errorf("Time() = %v, attendu %v", d.Time(), tt.want)
			}
		})
	}
}

func TestApiDateEncodage(t *testing.T) {
	zero, err := json.Marshal(apiDate(time.Time{}))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(zero) != "null" {
		t.Errorf("date zéro = %s, attendu null", zero)
	}

	d := apiDate(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	encoded, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(encoded) != `"2024-06-10T00:00:00Z"` {
		t.Errorf("encodage = %s", encoded)
	}
}
