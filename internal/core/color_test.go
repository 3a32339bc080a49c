package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		want    Color
		wantErr bool
	}{
		{"", ColorDefault, false},
		{"default", ColorDefault, false},
		{"bright_green", ColorBrightGreen, false},
		{"red", ColorRed, false},
		{"gray", ColorGray, false},
		{"purple", ColorDefault, true},
		{"Red", ColorDefault, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseColor(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.name, got, tc.want)
			}
		})
	}
}
