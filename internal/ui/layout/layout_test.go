package layout

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a longer title", 6, "a lon…"},
		{"abc", 1, "…"},
		{"数据结构与算法", 6, "数据…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestPadRightFillsCells(t *testing.T) {
	for _, in := range []string{"Arrays", "数据结构与算法", "二分 search over answers"} {
		got := PadRight(in, 12)
		if w := ansi.StringWidth(got); w != 12 {
			t.Errorf("PadRight(%q, 12) is %d cells wide: %q", in, w, got)
		}
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("narrow terminal should be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should fit")
	}
}
