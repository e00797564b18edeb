package layout

import "testing"

func TestIsListPrefix(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"-", true},
		{"*", true},
		{"•", true},
		{"◦", true},
		{"–", true},
		{"1.", true},
		{"12.", true},
		{"3)", true},
		{"142)", true},
		{"", false},
		{"Hello", false},
		{"1", false},
		{"a.", false},
		{"1.2", false},
		{"--", false},
	}

	for _, tt := range tests {
		if got := IsListPrefix(tt.word); got != tt.want {
			t.Errorf("IsListPrefix(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}
