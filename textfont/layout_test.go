package textfont

import (
	"strings"
	"testing"
)

// TestWrapTextDefaultFontWrapsLoremIpsum exercises §8 scenario 6: wrap
// "lorem ipsum dolor sit" into a 60px rectangle at font_size=10,
// spacing=1, using the default font. The wrapping state machine must
// break at whitespace, producing three lines whose concatenated rune
// sequence (with '\n' between lines) equals the input with spaces
// replaced by newlines at the break points.
func TestWrapTextDefaultFontWrapsLoremIpsum(t *testing.T) {
	f := DefaultBitmapFont()
	lines := WrapText(f, "lorem ipsum dolor sit", 10, 1, 60)

	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), lines)
	}
	want := []string{"lorem", "ipsum", "dolor sit"}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}

	joined := strings.Join(lines, "\n")
	wantJoined := "lorem\nipsum\ndolor sit"
	if joined != wantJoined {
		t.Fatalf("joined lines = %q, want %q", joined, wantJoined)
	}
}

func TestLayoutSharesCodePathBetweenMeasureAndDraw(t *testing.T) {
	f := DefaultBitmapFont()

	var emitted []rune
	result := Layout(f, "Hi", 10, 1, 0, func(r rune, penX, penY float32) {
		emitted = append(emitted, r)
	})

	if string(emitted) != "Hi" {
		t.Fatalf("expected emit to visit every rune in order, got %q", string(emitted))
	}
	if result.Width != 6 {
		t.Fatalf("expected draw-path width to match measure-path width (6), got %v", result.Width)
	}
}

func TestLayoutNewlineAdvancesLineHeight(t *testing.T) {
	f := DefaultBitmapFont()
	result := Layout(f, "a\nb", 10, 1, 0, nil)
	if len(result.Lines) != 2 {
		t.Fatalf("expected 2 lines split on \\n, got %d: %q", len(result.Lines), result.Lines)
	}
	if result.Height <= f.BaseSize() {
		t.Fatalf("expected two-line height to exceed a single base size, got %v", result.Height)
	}
}
