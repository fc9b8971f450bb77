package scrollfx

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TextAlign controls horizontal text alignment within a text node's box.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)

// Font wraps Ebitengine's text/v2 for TrueType font rendering.
type Font struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// defaultSource is the parsed Go Regular face, loaded on first use.
var defaultSource *text.GoTextFaceSource

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("scrollfx: failed to parse TTF data: %w", err)
	}
	return newFont(source, size), nil
}

// DefaultFont returns the bundled Go Regular face at the given size.
func DefaultFont(size float64) (*Font, error) {
	if defaultSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("scrollfx: failed to parse default font: %w", err)
		}
		defaultSource = source
	}
	return newFont(defaultSource, size), nil
}

func newFont(source *text.GoTextFaceSource, size float64) *Font {
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}
}

// MeasureString returns the width and height of the rendered text.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// TextBlock holds text content, formatting, and cached layout.
type TextBlock struct {
	Content   string
	Font      *Font
	Align     TextAlign
	WrapWidth float64 // 0 = no wrapping
	Color     Color

	lines []string
}

// NewText creates a text node. Its layout size is the measured size of the
// laid-out text, or WrapWidth wide when wrapping.
func NewText(name, content string, font *Font, wrapWidth float64) *Node {
	n := &Node{
		Name: name,
		Type: NodeTypeText,
		TextBlock: &TextBlock{
			Content:   content,
			Font:      font,
			WrapWidth: wrapWidth,
			Color:     ColorWhite,
		},
	}
	nodeDefaults(n)
	n.Relayout()
	return n
}

// Relayout recomputes line breaks and the node's layout size after the text
// content, font, or wrap width changed.
func (n *Node) Relayout() {
	tb := n.TextBlock
	if tb == nil || tb.Font == nil {
		return
	}
	tb.lines = wrapText(tb.Content, tb.Font, tb.WrapWidth)
	var maxW float64
	for _, l := range tb.lines {
		w, _ := tb.Font.MeasureString(l)
		if w > maxW {
			maxW = w
		}
	}
	if tb.WrapWidth > 0 {
		maxW = tb.WrapWidth
	}
	n.SetSize(maxW, float64(len(tb.lines))*tb.Font.LineHeight())
}

// wrapText breaks s into lines no wider than maxW (when positive), splitting
// on spaces. Explicit newlines always break. A single word wider than maxW
// gets a line of its own.
func wrapText(s string, f *Font, maxW float64) []string {
	var out []string
	for _, para := range strings.Split(s, "\n") {
		if maxW <= 0 {
			out = append(out, para)
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if cw, _ := f.MeasureString(candidate); cw > maxW {
				out = append(out, line)
				line = w
				continue
			}
			line = candidate
		}
		out = append(out, line)
	}
	return out
}
