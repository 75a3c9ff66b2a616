// Package crc32 implements CRC checksums of up to 32 bits as hash.Hash32.
//
// Unlike hash/crc32, any catalog model fits, including unreflected ones
// such as crc32_bzip2 and crc32_mpeg2.
package crc32

import (
	"hash"

	"github.com/pchchv/crc"
	"github.com/pchchv/crc/hashutil"
)

// Size of a CRC-32 checksum in bytes.
const Size = 4

// Table is a 256-word table representing the
// polynomial for efficient processing.
type Table = crc.Table[uint32]

// Params are the parameters of a CRC-32 algorithm.
type Params = crc.Params[uint32]

// digest represents the partial evaluation of a checksum.
type digest struct {
	e *crc.Engine[uint32]
}

// New creates a new hash.Hash32 computing the checksum
// described by p using table.
func New(p Params, table *Table) hash.Hash32 {
	return &digest{e: crc.New(p, table)}
}

// NewModel creates a new hash.Hash32 for the named catalog model.
func NewModel(name string) (hash.Hash32, error) {
	m, err := crc.Lookup(name)
	if err != nil {
		return nil, err
	}

	e, err := crc.NewEngine[uint32](m)
	if err != nil {
		return nil, err
	}

	return &digest{e: e}, nil
}

// Checksum returns the checksum of data computed with p and table.
func Checksum(data []byte, p Params, table *Table) uint32 {
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

// Sum32 returns the checksum of the data written so far.
func (d *digest) Sum32() uint32 {
	return d.e.Accum(nil)
}

func (d *digest) Sum(in []byte) []byte {
	return hashutil.AppendSum(in, uint64(d.Sum32()), d.e.Params().Width)
}
