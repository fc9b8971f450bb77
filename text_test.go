package scrollfx

import (
	"strings"
	"testing"
)

func testFont(t *testing.T) *Font {
	t.Helper()
	f, err := DefaultFont(16)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if _, err := LoadFont([]byte("not a font"), 12); err == nil {
		t.Error("expected error")
	}
}

func TestFontMetrics(t *testing.T) {
	f := testFont(t)
	if f.LineHeight() <= 0 {
		t.Errorf("LineHeight = %v", f.LineHeight())
	}
	short, _ := f.MeasureString("bee")
	long, _ := f.MeasureString("beetrends")
	if short <= 0 || long <= short {
		t.Errorf("widths %v, %v not increasing", short, long)
	}
}

func TestWrapTextNoWidth(t *testing.T) {
	f := testFont(t)
	got := wrapText("one line\nsecond", f, 0)
	if len(got) != 2 || got[0] != "one line" || got[1] != "second" {
		t.Errorf("lines = %q", got)
	}
}

func TestWrapTextBreaksOnSpaces(t *testing.T) {
	f := testFont(t)
	w, _ := f.MeasureString("alpha beta")
	got := wrapText("alpha beta gamma delta", f, w)
	if len(got) < 2 {
		t.Fatalf("lines = %q, want wrapping", got)
	}
	if strings.Join(got, " ") != "alpha beta gamma delta" {
		t.Errorf("words lost: %q", got)
	}
	for _, l := range got {
		if lw, _ := f.MeasureString(l); lw > w && strings.Contains(l, " ") {
			t.Errorf("line %q is %v wide, limit %v", l, lw, w)
		}
	}
}

func TestWrapTextLongWordOwnLine(t *testing.T) {
	f := testFont(t)
	got := wrapText("a supercalifragilistic b", f, 10)
	if len(got) != 3 || got[1] != "supercalifragilistic" {
		t.Errorf("lines = %q", got)
	}
}

func TestNewTextSize(t *testing.T) {
	f := testFont(t)
	n := NewText("p", "line one\nline two\nline three", f, 0)
	if n.Type != NodeTypeText {
		t.Errorf("Type = %v", n.Type)
	}
	if !approxEqual(n.Height, 3*f.LineHeight(), 1e-9) {
		t.Errorf("Height = %v, want %v", n.Height, 3*f.LineHeight())
	}
	w, _ := f.MeasureString("line three")
	if !approxEqual(n.Width, w, 1e-9) {
		t.Errorf("Width = %v, want %v", n.Width, w)
	}
}

func TestRelayoutUsesWrapWidth(t *testing.T) {
	f := testFont(t)
	n := NewText("p", "short", f, 0)
	oneLine := n.Height
	n.TextBlock.Content = strings.Repeat("word ", 40)
	n.TextBlock.WrapWidth = 200
	n.Relayout()
	if n.Width != 200 {
		t.Errorf("Width = %v, want 200", n.Width)
	}
	if n.Height <= oneLine {
		t.Errorf("Height = %v, want more than one line", n.Height)
	}
}
