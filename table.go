package crc

import "github.com/pchchv/crc/internal/bits"

// MakeTable returns the lookup table for the algorithm described by p.
// The table is reflected when both RefIn and RefOut are set,
// which is the form Engine expects for such algorithms.
func MakeTable[T Word](p Params[T]) *Table[T] {
	t := new(Table[T])
	reflected := p.RefIn && p.RefOut
	mask := bits.Mask[T](p.Width)
	msb := T(1) << (p.Width - 1)
	poly := p.Poly & mask
	for i := 0; i < 256; i++ {
		crc := T(i)
		if reflected {
			crc = bits.Reverse(crc, 8)
		}

		crc = crc << (p.Width - 8) & mask
		for j := 0; j < 8; j++ {
			if crc&msb != 0 {
				crc = crc<<1&mask ^ poly
			} else {
				crc = crc << 1 & mask
			}
		}

		if reflected {
			crc = bits.Reverse(crc, p.Width)
		}

		t[i] = crc
	}

	return t
}
