// Package encode maps validated operation statements to their exact machine
// word bit patterns. User mistakes never reach this package: the
// configuration validator runs first, so any impossible operand, size, or
// field width found here is an internal-consistency fault and panics.
package encode

import "fmt"

// opword assembles one 16-bit instruction word from bit fields, most
// significant first.
type opword struct {
	bits  uint
	value uint16
}

// field appends a bit field of the given width.
func (w *opword) field(value uint16, width uint) *opword {
	if width == 0 || width > 16 {
		panic(fmt.Sprintf("encode: bad field width %d", width))
	}
	w.bits += width
	w.value = w.value<<width | value&(1<<width-1)
	return w
}

// word returns the assembled word. The field widths must total exactly 16
// bits; anything else means the bit-field table itself is wrong.
func (w *opword) word() uint16 {
	if w.bits != 16 {
		panic(fmt.Sprintf("encode: opword assembled %d bits, want 16", w.bits))
	}
	return w.value
}
