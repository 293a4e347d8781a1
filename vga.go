package main

import "io"

const (
	vgaWidth  = 80
	vgaHeight = 25

	// CRTC cursor location registers.
	crtcCursorHigh = 0x0E
	crtcCursorLow  = 0x0F

	defaultAttr = 0x07 // light gray on black
)

// VGA is the text-mode renderer: a width*height grid of 16-bit cells
// (low byte character, high byte attribute), a cursor, and the CRTC
// cursor register protocol. An optional echo writer receives every byte
// written, which is how the host frontend mirrors the screen onto the
// real terminal.
type VGA struct {
	width, height int
	row, col      int
	attr          byte
	fb            []uint16
	ports         PortIO
	echo          io.Writer
}

func NewVGA(width, height int, attr byte, ports PortIO) *VGA {
	return &VGA{
		width:  width,
		height: height,
		attr:   attr,
		fb:     make([]uint16, width*height),
		ports:  ports,
	}
}

// Cell returns the (character, attribute) pair at the given position,
// or a zero cell if out of bounds.
func (v *VGA) Cell(row, col int) (byte, byte) {
	if row < 0 || row >= v.height || col < 0 || col >= v.width {
		return 0, 0
	}
	cell := v.fb[row*v.width+col]
	return byte(cell), byte(cell >> 8)
}

// Cursor returns the current cursor position.
func (v *VGA) Cursor() (row, col int) {
	return v.row, v.col
}

func (v *VGA) putAt(c byte, row, col int) {
	if row < 0 || row >= v.height || col < 0 || col >= v.width {
		return
	}
	v.fb[row*v.width+col] = uint16(c) | uint16(v.attr)<<8
}

func (v *VGA) updateCursor() {
	pos := uint16(v.row*v.width + v.col)
	v.ports.Outb(portCRTCIndex, crtcCursorLow)
	v.ports.Outb(portCRTCData, byte(pos))
	v.ports.Outb(portCRTCIndex, crtcCursorHigh)
	v.ports.Outb(portCRTCData, byte(pos>>8))
}

func (v *VGA) scroll() {
	copy(v.fb, v.fb[v.width:])
	blank := uint16(' ') | uint16(v.attr)<<8
	last := v.fb[(v.height-1)*v.width:]
	for i := range last {
		last[i] = blank
	}
}

func (v *VGA) newline() {
	v.col = 0
	v.row++
	if v.row == v.height {
		v.row = v.height - 1
		v.scroll()
	}
}

// Putc writes one byte at the cursor. \n starts a new line (scrolling off
// the top row when needed), \r returns to column 0, \b erases the cell to
// the left unless already at column 0. Anything else is written in the
// current attribute and the cursor advances, wrapping at the right edge.
func (v *VGA) Putc(c byte) {
	echo := []byte{c}
	switch c {
	case '\n':
		v.newline()
	case '\r':
		v.col = 0
	case '\b':
		if v.col > 0 {
			v.col--
			v.putAt(' ', v.row, v.col)
			// the grid blanks the cell, so the mirror must too
			echo = []byte{'\b', ' ', '\b'}
		} else {
			echo = nil
		}
	default:
		v.putAt(c, v.row, v.col)
		v.col++
		if v.col >= v.width {
			v.newline()
		}
	}
	v.updateCursor()
	if v.echo != nil && len(echo) > 0 {
		v.echo.Write(echo)
	}
}

func (v *VGA) Puts(s string) {
	for i := 0; i < len(s); i++ {
		v.Putc(s[i])
	}
}

// Clear blanks the grid in the current attribute and homes the cursor.
func (v *VGA) Clear() {
	blank := uint16(' ') | uint16(v.attr)<<8
	for i := range v.fb {
		v.fb[i] = blank
	}
	v.row, v.col = 0, 0
	v.updateCursor()
	if v.echo != nil {
		v.echo.Write([]byte("\x1b[H\x1b[2J"))
	}
}

func (v *VGA) putUint(val uint32, base uint32) {
	if val == 0 {
		v.Putc('0')
		return
	}
	var buf [32]byte
	i := 0
	for val > 0 {
		d := byte(val % base)
		if d < 10 {
			buf[i] = '0' + d
		} else {
			buf[i] = 'a' + d - 10
		}
		i++
		val /= base
	}
	for i > 0 {
		i--
		v.Putc(buf[i])
	}
}

func (v *VGA) putInt(val int32, base uint32) {
	if val < 0 {
		v.Putc('-')
		v.putUint(uint32(-val), base)
		return
	}
	v.putUint(uint32(val), base)
}

// Printf is the kernel formatter: %s %d %u %x %c only. An unrecognised
// verb is echoed literally as '%' followed by the letter.
func (v *VGA) Printf(format string, args ...interface{}) {
	next := 0
	arg := func() interface{} {
		if next >= len(args) {
			return nil
		}
		a := args[next]
		next++
		return a
	}
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			v.Putc(format[i])
			continue
		}
		i++
		if i == len(format) {
			v.Putc('%')
			return
		}
		switch f := format[i]; f {
		case 's':
			s, _ := arg().(string)
			v.Puts(s)
		case 'd':
			switch n := arg().(type) {
			case int:
				v.putInt(int32(n), 10)
			case int32:
				v.putInt(n, 10)
			}
		case 'u':
			switch n := arg().(type) {
			case int:
				v.putUint(uint32(n), 10)
			case uint32:
				v.putUint(n, 10)
			}
		case 'x':
			switch n := arg().(type) {
			case int:
				v.putUint(uint32(n), 16)
			case uint32:
				v.putUint(n, 16)
			}
		case 'c':
			switch c := arg().(type) {
			case byte:
				v.Putc(c)
			case rune:
				v.Putc(byte(c))
			}
		default:
			v.Putc('%')
			v.Putc(f)
		}
	}
}
