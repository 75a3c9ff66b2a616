// Package crc64 implements CRC checksums of up to 64 bits as hash.Hash64.
package crc64

import (
	"hash"

	"github.com/pchchv/crc"
	"github.com/pchchv/crc/hashutil"
)

// Size of a CRC-64 checksum in bytes.
const Size = 8

// Table is a 256-word table representing the
// polynomial for efficient processing.
type Table = crc.Table[uint64]

// Params are the parameters of a CRC-64 algorithm.
type Params = crc.Params[uint64]

type digest struct {
	e *crc.Engine[uint64]
}

// New creates a new hash.Hash64 computing the checksum
// described by p using table.
func New(p Params, table *Table) hash.Hash64 {
	return &digest{e: crc.New(p, table)}
}

// NewModel creates a new hash.Hash64 for the named catalog model.
// Every catalog model fits a 64-bit register.
func NewModel(name string) (hash.Hash64, error) {
	m, err := crc.Lookup(name)
	if err != nil {
		return nil, err
	}

	e, err := crc.NewEngine[uint64](m)
	if err != nil {
		return nil, err
	}

	return &digest{e: e}, nil
}

// Checksum returns the checksum of data computed with p and table.
func Checksum(data []byte, p Params, table *Table) uint64 {
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

func (d *digest) Sum64() uint64 {
	return d.e.Accum(nil)
}

func (d *digest) Sum(in []byte) []byte {
	return hashutil.AppendSum(in, d.Sum64(), d.e.Params().Width)
}
