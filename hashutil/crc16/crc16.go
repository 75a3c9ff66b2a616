// Package crc16 implements 16-bit CRC checksums as hash.Hash.
package crc16

import (
	"github.com/pchchv/crc"
	"github.com/pchchv/crc/hashutil"
)

// Size of a CRC-16 checksum in bytes.
const Size = 2

// Table is a 256-word table representing the
// polynomial for efficient processing.
type Table = crc.Table[uint16]

// Params are the parameters of a CRC-16 algorithm.
type Params = crc.Params[uint16]

// digest represents the partial evaluation of a checksum.
type digest struct {
	e *crc.Engine[uint16]
}

// New creates a new hashutil.Hash16 computing the checksum
// described by p using table.
func New(p Params, table *Table) hashutil.Hash16 {
	return &digest{e: crc.New(p, table)}
}

// NewModel creates a new hashutil.Hash16 for the named catalog model.
// 8-bit models are accepted and summed in a single byte.
func NewModel(name string) (hashutil.Hash16, error) {
	m, err := crc.Lookup(name)
	if err != nil {
		return nil, err
	}

	e, err := crc.NewEngine[uint16](m)
	if err != nil {
		return nil, err
	}

	return &digest{e: e}, nil
}

// Checksum returns the checksum of data computed with p and table.
func Checksum(data []byte, p Params, table *Table) uint16 {
	return crc.New(p, table).Calc(data)
}

func (d *digest) Size() int {
	return int(d.e.Params().Width / 8)
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

// Sum16 returns the checksum of the data written so far.
func (d *digest) Sum16() uint16 {
	return d.e.Accum(nil)
}

func (d *digest) Sum(in []byte) []byte {
	return hashutil.AppendSum(in, uint64(d.Sum16()), d.e.Params().Width)
}
