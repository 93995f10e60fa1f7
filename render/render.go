// Package render turns a finished QR symbol into text or SVG output.
//
// Renderers only need the module grid; quiet zone, scale and colours are
// decided here, never by the symbol generator.
package render

// Modules is the read side of a QR symbol.
type Modules interface {
	ModuleCount() int
	IsDark(row, col int) bool
}

// DefaultMargin is the quiet zone width in modules required by ISO 18004.
const DefaultMargin = 4

// darkAt reports whether (row, col) is dark, treating the quiet zone
// around the symbol as light.
func darkAt(m Modules, row, col int) bool {
	n := m.ModuleCount()
	if row < 0 || col < 0 || row >= n || col >= n {
		return false
	}
	return m.IsDark(row, col)
}
