package util

import "testing"

func TestCleanNumericString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"currency prefix and comma", "Rs. 1,250", "1250"},
		{"plain digits", "599", "599"},
		{"no digits", "Rs. ", ""},
		{"idempotent on cleaned output", "1250", "1250"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanNumericString(tt.input); got != tt.want {
				t.Errorf("CleanNumericString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSafeAtoi(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain", "42", 42},
		{"whitespace", " 42 ", 42},
		{"garbage", "abc", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeAtoi(tt.input); got != tt.want {
				t.Errorf("SafeAtoi(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
