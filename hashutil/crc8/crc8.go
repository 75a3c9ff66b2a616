// Package crc8 implements 8-bit CRC checksums as hash.Hash.
package crc8

import (
	"github.com/pchchv/crc"
	"github.com/pchchv/crc/hashutil"
)

// Size of a CRC-8 checksum in bytes.
const Size = 1

// Table is a 256-word table representing
// the polynomial for efficient processing.
type Table = crc.Table[uint8]

// Params are the parameters of a CRC-8 algorithm.
type Params = crc.Params[uint8]

// digest represents the partial evaluation of a checksum.
type digest struct {
	e *crc.Engine[uint8]
}

// New creates a new hashutil.Hash8 computing the checksum
// described by p using table.
func New(p Params, table *Table) hashutil.Hash8 {
	return &digest{e: crc.New(p, table)}
}

// NewModel creates a new hashutil.Hash8 for the named catalog model.
func NewModel(name string) (hashutil.Hash8, error) {
	m, err := crc.Lookup(name)
	if err != nil {
		return nil, err
	}

	e, err := crc.NewEngine[uint8](m)
	if err != nil {
		return nil, err
	}

	return &digest{e: e}, nil
}

// Checksum returns the checksum of data computed with p and table.
func Checksum(data []byte, p Params, table *Table) uint8 {
	return crc.New(p, table).Calc(data)
}

func (d *digest) Size() int {
	return Size
}

func (d *digest) BlockSize() int {
	return 1
}

func (d *digest) Reset() {
	d.e.Reset()
}

func (d *digest) Write(p []byte) (n int, err error) {
	d.e.Accum(p)
	return len(p), nil
}

// Sum8 returns the checksum of the data written so far.
func (d *digest) Sum8() uint8 {
	return d.e.Accum(nil)
}

func (d *digest) Sum(in []byte) []byte {
	return append(in, d.Sum8())
}
