package crypto

import (
	"math"
	"testing"
)

func TestCaesar(t *testing.T) {
	tests := []struct {
		name    string
		message string
		shift   int
		encrypt bool
		want    string
	}{
		{"encrypt hello", "HELLO", 3, true, "KHOOR"},
		{"decrypt hello", "KHOOR", 3, false, "HELLO"},
		{"keeps non letters", "HI 123!", 1, true, "IJ 123!"},
		{"wraps around", "XYZ", 3, true, "ABC"},
		{"negative shift", "ABC", -3, true, "XYZ"},
		{"shift above 25", "HELLO", 29, true, "KHOOR"},
		{"zero shift normalizes", "héllo", 0, true, "HELLO"},
		{"lowercase and accents", "héllo wörld", 3, true, "KHOOR ZRUOG"},
		{"empty", "", 5, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Caesar(tt.message, tt.shift, tt.encrypt); got != tt.want {
				t.Errorf("Caesar(%q, %d, %v) = %q, want %q", tt.message, tt.shift, tt.encrypt, got, tt.want)
			}
		})
	}
}

func TestCaesarRoundTrip(t *testing.T) {
	messages := []string{"", "HELLO", "Attack at dawn!", "Ñandú 42", "The quick brown fox jumps over the lazy dog."}
	shifts := []int{math.MinInt, -1000, -27, -1, 0, 1, 13, 25, 26, 1000, math.MaxInt}

	for _, message := range messages {
		for _, shift := range shifts {
			encrypted := Caesar(message, shift, true)
			if got := Caesar(encrypted, shift, false); got != Normalize(message) {
				t.Errorf("round trip of %q with shift %d = %q, want %q", message, shift, got, Normalize(message))
			}
			if len([]rune(encrypted)) != len([]rune(Normalize(message))) {
				t.Errorf("Caesar changed length of %q", message)
			}
		}
	}
}
