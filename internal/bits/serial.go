package bits

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Params is the Rocksoft description of a CRC algorithm
// with every value held in the low Width bits of a uint64.
// Init is given in the unreflected domain.
type Params struct {
	Width  uint
	Poly   uint64
	Init   uint64
	XorOut uint64
	RefIn  bool
	RefOut bool
}

// Update shifts every bit of data into the unreflected register crc,
// most significant bit of each byte first, and returns the new register.
// Input bytes are reversed first when refIn is set.
//
// Update performs polynomial division one bit at a time
// and needs no lookup table.
func Update(crc uint64, width uint, poly uint64, refIn bool, data []byte) (uint64, error) {
	if width == 0 || width > 64 {
		return 0, fmt.Errorf("bits.Update: invalid width; expected 1..64, got %d", width)
	}

	src := data
	if refIn {
		src = make([]byte, len(data))
		for i, b := range data {
			src[i] = Reverse(b, 8)
		}
	}

	mask := Mask[uint64](width)
	crc &= mask
	br := bitio.NewReader(bytes.NewReader(src))
	for n := len(src) * 8; n > 0; n-- {
		bit, err := br.ReadBool()
		if err != nil {
			return 0, err
		}

		top := crc>>(width-1)&1 == 1
		crc = crc << 1 & mask
		if top != bit {
			crc ^= poly & mask
		}
	}

	return crc, nil
}

// Checksum returns the checksum of data computed bit by bit.
func (p Params) Checksum(data []byte) (uint64, error) {
	crc, err := Update(p.Init, p.Width, p.Poly, p.RefIn, data)
	if err != nil {
		return 0, err
	}

	if p.RefOut {
		crc = Reverse(crc, p.Width)
	}

	return crc ^ p.XorOut&Mask[uint64](p.Width), nil
}

// Entry returns the lookup table entry for index i:
// the remainder of the single byte i divided by the polynomial,
// reflected over Width bits when both RefIn and RefOut are set.
func (p Params) Entry(i uint8) (uint64, error) {
	if p.RefIn && p.RefOut {
		crc, err := Update(0, p.Width, p.Poly, true, []byte{i})
		if err != nil {
			return 0, err
		}

		return Reverse(crc, p.Width), nil
	}

	return Update(0, p.Width, p.Poly, false, []byte{i})
}
