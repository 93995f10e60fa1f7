package render

import "strings"

const (
	_blank      = " "
	_block      = "█"
	_blank_x2   = "  "
	_block_x2   = "██"
	_block_down = "▄"
	_block_up   = "▀"
	_lf         = "\n"

	// compactThreshold is the largest symbol drawn two characters per
	// module by Text; bigger symbols use half blocks to fit a terminal.
	compactThreshold = 57
)

// Text renders m for a terminal, picking the compact form for large
// symbols.
func Text(m Modules, margin int) string {
	if m.ModuleCount() > compactThreshold {
		return TerminalCompact(m, margin)
	}
	return Terminal(m, margin)
}

// Terminal renders every module as two characters. Dark modules are
// printed blank and light modules as blocks, so the code scans on a dark
// terminal background.
func Terminal(m Modules, margin int) string {
	if margin < 0 {
		margin = 0
	}
	n := m.ModuleCount()
	var buf strings.Builder
	for y := -margin; y < n+margin; y++ {
		for x := -margin; x < n+margin; x++ {
			if darkAt(m, y, x) {
				buf.WriteString(_blank_x2)
				continue
			}
			buf.WriteString(_block_x2)
		}
		buf.WriteString(_lf)
	}
	return buf.String()
}

// TerminalCompact renders two module rows per text line with half block
// characters, inverted like Terminal.
func TerminalCompact(m Modules, margin int) string {
	if margin < 0 {
		margin = 0
	}
	n := m.ModuleCount()
	last := n + margin
	var buf strings.Builder
	for y := -margin; y < last; y += 2 {
		for x := -margin; x < n+margin; x++ {
			top := darkAt(m, y, x)
			bottom := y+1 < last && darkAt(m, y+1, x)
			if y+1 >= last {
				// odd row count, lower half is outside the drawing
				if top {
					buf.WriteString(_blank)
					continue
				}
				buf.WriteString(_block_up)
				continue
			}
			switch {
			case top == bottom && top:
				buf.WriteString(_blank)
			case top == bottom:
				buf.WriteString(_block)
			case top:
				buf.WriteString(_block_down)
			default:
				buf.WriteString(_block_up)
			}
		}
		buf.WriteString(_lf)
	}
	return buf.String()
}
