package spec

import "testing"

func TestCIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"malloc", "malloc"},
		{"_strdup", "_strdup"},
		{"??0exception@@QAE@XZ", "__0exception__QAE_XZ"},
		{"operator+", "operator_"},
		{"123abc", "_123abc"},
		{"", "_stub"},
		{"$I10_OUTPUT", "_I10_OUTPUT"},
	}
	for _, tc := range tests {
		if got := CIdentifier(tc.in); got != tc.want {
			t.Errorf("CIdentifier(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
