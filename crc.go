// Package crc provides a generic table-driven CRC engine for checksums
// of 8 to 64 bits.
//
// An Engine is built from the parameters of a CRC algorithm and a
// precomputed 256-entry lookup table. Calc computes the checksum of a
// single buffer. Accum folds data delivered in chunks into a running
// register, and Get finalizes it and starts over.
package crc

import (
	"fmt"

	"github.com/pchchv/crc/internal/bits"
)

// Word is the set of native register types.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Table is a 256-word table of the remainders of every byte value
// divided by the polynomial, for efficient processing.
// Algorithms with both RefIn and RefOut set use the reflected table.
type Table[T Word] [256]T

// Params holds the defining parameters of a CRC algorithm.
type Params[T Word] struct {
	// Width of the checksum in bits; a multiple of 8 no larger than T.
	Width uint
	// Generator polynomial without its leading bit.
	// Only used to build tables, never read by the engine.
	Poly T
	// Register value before any data is processed.
	// For reflected algorithms it is given in reflected bit order.
	Init T
	// Value XOR-ed into the register to produce a checksum.
	XorOut T
	// Reverse the bits of each input byte before processing.
	RefIn bool
	// Reverse the Width bits of the register before the final XOR.
	RefOut bool
}

// Validate reports whether Width fits the register type T.
func (p Params[T]) Validate() error {
	size := bits.Size[T]()
	if p.Width < 8 || p.Width > size || p.Width%8 != 0 {
		return fmt.Errorf("crc.Params.Validate: width %d for a %d-bit register: %w", p.Width, size, ErrWidth)
	}

	return nil
}

// Engine computes CRC checksums for a single algorithm.
//
// An Engine is not safe for concurrent use by Accum, Reset and Get.
// Calc does not touch the running register
// and may be called concurrently.
type Engine[T Word] struct {
	p     Params[T]
	table *Table[T]
	mask  T
	// running register, never holding XorOut.
	acc T
}

// New returns an Engine for the algorithm described by p,
// using table for lookups. The table is borrowed, not copied.
// p and table are trusted to describe the same algorithm.
func New[T Word](p Params[T], table *Table[T]) *Engine[T] {
	e := &Engine[T]{
		p:     p,
		table: table,
		mask:  bits.Mask[T](p.Width),
	}

	e.Reset()
	return e
}

// Params returns the parameters of the engine.
func (e *Engine[T]) Params() Params[T] {
	return e.p
}

// Table returns the lookup table of the engine.
func (e *Engine[T]) Table() *Table[T] {
	return e.table
}

// Calc returns the checksum of data.
// It neither reads nor modifies the running register.
func (e *Engine[T]) Calc(data []byte) T {
	return e.sum(e.update(e.p.Init&e.mask, data))
}

// Accum folds data into the running register and returns the checksum
// of all data accumulated since the last Reset or Get.
func (e *Engine[T]) Accum(data []byte) T {
	e.acc = e.update(e.acc, data)
	return e.sum(e.acc)
}

// Reset sets the running register back to Init.
func (e *Engine[T]) Reset() {
	e.acc = e.p.Init & e.mask
}

// Get returns the checksum of all data accumulated since the last
// Reset or Get, and resets the running register.
func (e *Engine[T]) Get() T {
	crc := e.sum(e.acc)
	e.Reset()
	return crc
}

// Hex formats crc as Width/4 zero-padded hexadecimal digits.
func (e *Engine[T]) Hex(crc T) string {
	return fmt.Sprintf("%0*x", int(e.p.Width/4), uint64(crc&e.mask))
}

func (e *Engine[T]) update(crc T, data []byte) T {
	if e.p.RefIn && e.p.RefOut {
		return updateReflected(crc, e.table, data)
	}

	return updateGeneral(crc, e.table, e.p.Width, e.p.RefIn, data)
}

// sum turns a register into a checksum.
// Reflected algorithms keep the register in reflected order already,
// so only RefOut without RefIn reverses it here.
func (e *Engine[T]) sum(crc T) T {
	if e.p.RefOut && !e.p.RefIn {
		crc = bits.Reverse(crc, e.p.Width)
	}

	return (crc ^ e.p.XorOut) & e.mask
}

// updateReflected processes data least significant bit first
// using a reflected table.
func updateReflected[T Word](crc T, table *Table[T], data []byte) T {
	for _, b := range data {
		crc = crc>>8 ^ table[byte(crc)^b]
	}

	return crc
}

// updateGeneral processes data most significant bit first with the
// register's top byte at bit width-8, using a normal table.
// The register is masked to width bits after every shift.
func updateGeneral[T Word](crc T, table *Table[T], width uint, refIn bool, data []byte) T {
	mask := bits.Mask[T](width)
	shift := width - 8
	for _, b := range data {
		x := T(b)
		if refIn {
			x = bits.Reverse(x, 8)
		}

		crc ^= x << shift
		crc = (crc<<8 ^ table[byte(crc>>shift)]) & mask
	}

	return crc
}
