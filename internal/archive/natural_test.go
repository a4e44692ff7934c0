package archive

import "testing"

func TestNaturalCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"page2.png", "page10.png", -1},
		{"page10.png", "page2.png", 1},
		{"Page2.png", "page10.png", -1},
		{"ch1/p9.jpg", "ch1/p10.jpg", -1},
		{"ch2/p1.jpg", "ch10/p1.jpg", -1},
		{"a.png", "a1.png", -1},
		{"001.png", "1.png", -1},
		{"99999999999999999999999.png", "100000000000000000000000.png", -1},
		{"same.png", "same.png", 0},
		{"B.png", "a.png", 1},
		{"", "a.png", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"|"+tt.b, func(t *testing.T) {
			if got := NaturalCompare(tt.a, tt.b); got != tt.want {
				t.Errorf("NaturalCompare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
