package lineclass

import "testing"

func TestRuns(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		marker byte
		want   []Run
	}{
		{"simple pair", "_a_ b", '_', []Run{{0, 1}, {2, 1}}},
		{"double runs", "__a__", '_', []Run{{0, 2}, {3, 2}}},
		{"intraword underscore", "snake_case_name", '_', nil},
		{"inside code span", "`a_b_` _c_", '_', []Run{{7, 1}, {9, 1}}},
		{"spaced asterisk", "2 * 3", '*', nil},
		{"escaped", `\*a*`, '*', []Run{{3, 1}}},
		{"bullet marker", "* item", '*', nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Runs(tt.line, tt.marker)
			if len(got) != len(tt.want) {
				t.Fatalf("Runs(%q) = %v, want %v", tt.line, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("run %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBalanced(t *testing.T) {
	tests := []struct {
		line   string
		marker byte
		want   bool
	}{
		{"*bold* text", '*', true},
		{"*bold text", '*', false},
		{"**a** and *b*", '*', true},
		{"**a*", '*', false},
		{"_a_ _b", '_', false},
		{"plain text", '_', true},
		{"* list item", '*', true},
		{"`*code`", '*', true},
	}
	for _, tt := range tests {
		if got := Balanced(tt.line, tt.marker); got != tt.want {
			t.Errorf("Balanced(%q, %q) = %v, want %v", tt.line, tt.marker, got, tt.want)
		}
	}
}
