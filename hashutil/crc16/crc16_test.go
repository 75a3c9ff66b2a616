package crc16_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pchchv/crc/hashutil/crc16"
)

func TestTeeReader(t *testing.T) {
	h, err := crc16.NewModel("crc16_modbus")
	if err != nil {
		t.Fatal(err)
	}

	r := io.TeeReader(strings.NewReader("123456789"), h)
	buf := make([]byte, 2)
	for {
		if _, err := r.Read(buf); err == io.EOF {
			break
		} else if err != nil {
			t.Fatal(err)
		}
	}

	if got := h.Sum16(); got != 0x4B37 {
		t.Errorf("expected 0x4B37, got 0x%04X", got)
	}

	if got := h.Sum(nil); !bytes.Equal(got, []byte{0x4B, 0x37}) {
		t.Errorf("expected 4B37, got %X", got)
	}
}

func TestSumDoesNotFinalize(t *testing.T) {
	h, err := crc16.NewModel("CRC-16/XMODEM")
	if err != nil {
		t.Fatal(err)
	}

	h.Write([]byte("1234"))
	h.Sum16()
	h.Write([]byte("56789"))
	if got := h.Sum16(); got != 0x31C3 {
		t.Errorf("expected 0x31C3, got 0x%04X", got)
	}
}

func TestEightBitModel(t *testing.T) {
	h, err := crc16.NewModel("crc8")
	if err != nil {
		t.Fatal(err)
	}

	h.Write([]byte("123456789"))
	if h.Size() != 1 {
		t.Errorf("expected size 1, got %d", h.Size())
	}

	if got := h.Sum(nil); !bytes.Equal(got, []byte{0xF4}) {
		t.Errorf("expected F4, got %X", got)
	}
}

func TestUnknownModel(t *testing.T) {
	if _, err := crc16.NewModel("crc16_nope"); err == nil {
		t.Error("expected error for unknown model")
	}
}
