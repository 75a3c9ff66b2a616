// Package bits provides bit reversal helpers and a bit-serial CRC
// used to derive and check lookup tables.
package bits

// Unsigned is the set of native register types.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Reverse returns the low width bits of x in reverse order.
// Bits of x above width are dropped.
func Reverse[T Unsigned](x T, width uint) T {
	var r T
	for i := uint(0); i < width; i++ {
		r <<= 1
		r |= x & 1
		x >>= 1
	}

	return r
}

// Mask returns a value of type T with the low width bits set.
// A width of zero or beyond the size of T yields all bits of T.
func Mask[T Unsigned](width uint) T {
	all := ^T(0)
	size := Size[T]()
	if width == 0 || width >= size {
		return all
	}

	return all >> (size - width)
}

// Size returns the number of bits in T.
func Size[T Unsigned]() uint {
	var n uint
	for x := ^T(0); x != 0; x >>= 1 {
		n++
	}

	return n
}
