package render

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// SVG defaults.
const (
	DefaultScale      = 4
	DefaultColor      = "#000000"
	DefaultBackground = "#ffffff"
)

// SVGOptions controls the SVG output. Zero fields take the defaults.
type SVGOptions struct {
	// Margin is the quiet zone in modules.
	Margin int
	// Scale is the number of pixels per module of the width/height
	// attributes; the viewBox is always in module units.
	Scale int
	// Color fills the dark modules.
	Color string
	// Background fills the whole canvas.
	Background string
}

func (o SVGOptions) withDefaults() SVGOptions {
	if o.Margin <= 0 {
		o.Margin = DefaultMargin
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.Color == "" {
		o.Color = DefaultColor
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	return o
}

// SVGPath returns the path data with one unit square per dark module,
// offset by margin, and the canvas size in modules.
func SVGPath(m Modules, margin int) (path string, size int) {
	n := m.ModuleCount()
	var buf strings.Builder
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if !m.IsDark(row, col) {
				continue
			}
			fmt.Fprintf(&buf, "M%d,%d h1 v1 h-1 Z", col+margin, row+margin)
		}
	}
	return buf.String(), n + 2*margin
}

// WriteSVG writes m as a standalone SVG document.
func WriteSVG(w io.Writer, m Modules, opts SVGOptions) error {
	opts = opts.withDefaults()
	path, size := SVGPath(m, opts.Margin)
	dimension := size * opts.Scale
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`+
			`<rect width="100%%" height="100%%" fill="%s"/>`+
			`<path d="%s" fill="%s"/>`+
			`</svg>`,
		dimension, dimension, size, size,
		html.EscapeString(opts.Background),
		path,
		html.EscapeString(opts.Color))
	return err
}

// SVG returns m as a standalone SVG document.
func SVG(m Modules, opts SVGOptions) string {
	var buf strings.Builder
	// strings.Builder never fails
	_ = WriteSVG(&buf, m, opts)
	return buf.String()
}
