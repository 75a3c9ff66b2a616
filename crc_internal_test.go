package crc

import (
	"math/rand"
	"testing"

	"github.com/pchchv/crc/internal/bits"
)

// The general path, fed the normal table and reflecting input and result
// explicitly, computes the same function as the reflected path.
func TestBranchEquivalence(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	data := make([]byte, 512)
	r.Read(data)
	for _, m := range models {
		if !m.Reflected() {
			continue
		}

		e, err := NewEngine[uint64](m)
		if err != nil {
			t.Fatal(err)
		}

		p := e.Params()
		normal := MakeTable(Params[uint64]{Width: p.Width, Poly: p.Poly})
		for _, n := range []int{0, 1, 9, len(data)} {
			crc := updateGeneral(bits.Reverse(p.Init, p.Width), normal, p.Width, true, data[:n])
			got := bits.Reverse(crc, p.Width) ^ p.XorOut
			if want := e.Calc(data[:n]); got != want {
				t.Errorf("%s len %d: reflected path 0x%X, general path 0x%X", m.Name, n, want, got)
			}
		}
	}
}

func TestRegisterWithoutXorOut(t *testing.T) {
	for _, name := range []string{"crc32", "crc32_bzip2", "crc16_genibus", "crc8_sae_j1850"} {
		m, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}

		e, err := NewEngine[uint64](m)
		if err != nil {
			t.Fatal(err)
		}

		got := e.Accum([]byte("hello "))
		if want := e.update(e.p.Init, []byte("hello ")); e.acc != want {
			t.Errorf("%s: stored register 0x%X, expected 0x%X", name, e.acc, want)
		}

		if got != e.acc^e.p.XorOut {
			t.Errorf("%s: returned 0x%X, stored 0x%X, xorout 0x%X", name, got, e.acc, e.p.XorOut)
		}
	}
}

func TestRegisterMasked(t *testing.T) {
	r := rand.New(rand.NewSource(16))
	buf := make([]byte, 33)
	for _, m := range models {
		if m.Width == 64 {
			continue
		}

		e, err := NewEngine[uint64](m)
		if err != nil {
			t.Fatal(err)
		}

		for i := 0; i < 50; i++ {
			r.Read(buf)
			e.Accum(buf)
			if e.acc&^e.mask != 0 {
				t.Fatalf("%s: register 0x%X exceeds %d bits", m.Name, e.acc, m.Width)
			}
		}
	}
}

func TestInitMasked(t *testing.T) {
	p := Params[uint32]{Width: 16, Poly: 0x1021, Init: 0xdead1d0f}
	e := New(p, MakeTable(p))
	if e.acc != 0x1d0f {
		t.Errorf("expected register 0x1D0F, got 0x%X", e.acc)
	}

	if got := e.Calc([]byte("123456789")); got != 0xe5cc {
		t.Errorf("expected 0xE5CC, got 0x%04X", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"CRC-32", "crc32"},
		{"crc32", "crc32"},
		{"CRC-16/XMODEM", "crc16_xmodem"},
		{" CRC-8/SAE-J1850 ", "crc8_sae_j1850"},
		{"CRC-64/ECMA-182", "crc64_ecma_182"},
		{"CRC-16/EN-13757", "crc16_en_13757"},
	}

	for _, test := range tests {
		if got := normalize(test.in); got != test.want {
			t.Errorf("normalize(%q): expected %q, got %q", test.in, test.want, got)
		}
	}
}
