package crc_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/pchchv/crc"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"crc32", "crc32"},
		{"CRC-32", "crc32"},
		{"CRC-32/ISO-HDLC", "crc32"},
		{"CRC-32/MPEG-2", "crc32_mpeg2"},
		{"CRC-32C", "crc32_c"},
		{"crc-32/castagnoli", "crc32_c"},
		{"CRC-16/XMODEM", "crc16_xmodem"},
		{"CRC-16/X-25", "crc16_x25"},
		{"CRC-16/MODBUS", "crc16_modbus"},
		{"CRC-8/I-432-1", "crc8_itu"},
		{"CRC-64/XZ", "crc64_xz"},
	}

	for _, test := range tests {
		m, err := crc.Lookup(test.name)
		if err != nil {
			t.Errorf("%q: %v", test.name, err)
			continue
		}

		if m.Name != test.want {
			t.Errorf("%q: expected model %q, got %q", test.name, test.want, m.Name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := crc.Lookup("crc33")
	if !errors.Is(err, crc.ErrUnknownModel) {
		t.Fatalf("expected ErrUnknownModel, got %v", err)
	}

	if err.Error() != `crc.Lookup: unknown CRC model "crc33"` {
		t.Errorf("unexpected message %q", err)
	}
}

func TestNames(t *testing.T) {
	names := crc.Names()
	if len(names) != 51 {
		t.Errorf("expected 51 models, got %d", len(names))
	}

	if !sort.StringsAreSorted(names) {
		t.Error("names are not sorted")
	}

	for _, name := range names {
		m, err := crc.Lookup(name)
		if err != nil {
			t.Fatal(err)
		}

		if m.String() != name {
			t.Errorf("expected %q, got %q", name, m)
		}
	}
}

func TestRegisterTooNarrow(t *testing.T) {
	m, err := crc.Lookup("crc32")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := crc.NewEngine[uint16](m); !errors.Is(err, crc.ErrWidth) {
		t.Errorf("NewEngine: expected ErrWidth, got %v", err)
	}

	if _, err := crc.ModelTable[uint8](m); !errors.Is(err, crc.ErrWidth) {
		t.Errorf("ModelTable: expected ErrWidth, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		width uint
		ok    bool
	}{
		{0, false},
		{4, false},
		{8, true},
		{12, false},
		{16, true},
		{24, true},
		{32, true},
		{40, false},
	}

	for _, test := range tests {
		err := crc.Params[uint32]{Width: test.width}.Validate()
		if test.ok && err != nil {
			t.Errorf("width %d: unexpected error %v", test.width, err)
		}

		if !test.ok && !errors.Is(err, crc.ErrWidth) {
			t.Errorf("width %d: expected ErrWidth, got %v", test.width, err)
		}
	}
}

func TestModelParamsReflectedInit(t *testing.T) {
	m, err := crc.Lookup("crc16_riello")
	if err != nil {
		t.Fatal(err)
	}

	p, err := crc.ModelParams[uint16](m)
	if err != nil {
		t.Fatal(err)
	}

	if p.Init != 0x554d {
		t.Errorf("expected reflected init 0x554D, got 0x%04X", p.Init)
	}

	m, err = crc.Lookup("crc16_aug_ccitt")
	if err != nil {
		t.Fatal(err)
	}

	if p, err = crc.ModelParams[uint16](m); err != nil {
		t.Fatal(err)
	}

	if p.Init != 0x1d0f {
		t.Errorf("expected init 0x1D0F, got 0x%04X", p.Init)
	}
}
