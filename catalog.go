package crc

import (
	"errors"
	"fmt"
	"hash/crc64"
	"sort"
	"strings"
	"sync"

	"github.com/klauspost/crc32"
	"github.com/pchchv/crc/internal/bits"
)

var (
	ErrUnknownModel = errors.New("unknown CRC model")                    // name is not in the catalog
	ErrWidth        = errors.New("width does not fit the register type") // width is not a multiple of 8 in 8..size of the register
)

// Model describes a named CRC algorithm of the catalog.
// Values are held in the low Width bits.
type Model struct {
	Name   string
	Width  uint
	Poly   uint64
	Init   uint64 // unreflected, as published
	XorOut uint64
	RefIn  bool
	RefOut bool
	// Checksum of the ASCII string "123456789".
	Check uint64

	// source returns a precomputed table, if one is available.
	source func() *Table[uint64]
	once   sync.Once
	table  *Table[uint64]
	typed  sync.Map // register size in bits -> *Table[T]
}

var models = []*Model{
	// CRC-8
	{Name: "crc8", Width: 8, Poly: 0x07, Check: 0xf4},
	{Name: "crc8_sae_j1850", Width: 8, Poly: 0x1d, Init: 0xff, XorOut: 0xff, Check: 0x4b},
	{Name: "crc8_sae_j1850_zero", Width: 8, Poly: 0x1d, Check: 0x37},
	{Name: "crc8_8h2f", Width: 8, Poly: 0x2f, Init: 0xff, XorOut: 0xff, Check: 0xdf},
	{Name: "crc8_cdma2000", Width: 8, Poly: 0x9b, Init: 0xff, Check: 0xda},
	{Name: "crc8_darc", Width: 8, Poly: 0x39, RefIn: true, RefOut: true, Check: 0x15},
	{Name: "crc8_dvb_s2", Width: 8, Poly: 0xd5, Check: 0xbc},
	{Name: "crc8_ebu", Width: 8, Poly: 0x1d, Init: 0xff, RefIn: true, RefOut: true, Check: 0x97},
	{Name: "crc8_icode", Width: 8, Poly: 0x1d, Init: 0xfd, Check: 0x7e},
	{Name: "crc8_itu", Width: 8, Poly: 0x07, XorOut: 0x55, Check: 0xa1},
	{Name: "crc8_maxim", Width: 8, Poly: 0x31, RefIn: true, RefOut: true, Check: 0xa1},
	{Name: "crc8_rohc", Width: 8, Poly: 0x07, Init: 0xff, RefIn: true, RefOut: true, Check: 0xd0},
	{Name: "crc8_wcdma", Width: 8, Poly: 0x9b, RefIn: true, RefOut: true, Check: 0x25},
	// CRC-16
	{Name: "crc16_ccit_zero", Width: 16, Poly: 0x1021, Check: 0x31c3},
	{Name: "crc16_arc", Width: 16, Poly: 0x8005, RefIn: true, RefOut: true, Check: 0xbb3d},
	{Name: "crc16_aug_ccitt", Width: 16, Poly: 0x1021, Init: 0x1d0f, Check: 0xe5cc},
	{Name: "crc16_buypass", Width: 16, Poly: 0x8005, Check: 0xfee8},
	{Name: "crc16_ccitt_false", Width: 16, Poly: 0x1021, Init: 0xffff, Check: 0x29b1},
	{Name: "crc16_cdma2000", Width: 16, Poly: 0xc867, Init: 0xffff, Check: 0x4c06},
	{Name: "crc16_dds_110", Width: 16, Poly: 0x8005, Init: 0x800d, Check: 0x9ecf},
	{Name: "crc16_dect_r", Width: 16, Poly: 0x0589, XorOut: 0x0001, Check: 0x007e},
	{Name: "crc16_dect_x", Width: 16, Poly: 0x0589, Check: 0x007f},
	{Name: "crc16_dnp", Width: 16, Poly: 0x3d65, XorOut: 0xffff, RefIn: true, RefOut: true, Check: 0xea82},
	{Name: "crc16_en_13757", Width: 16, Poly: 0x3d65, XorOut: 0xffff, Check: 0xc2b7},
	{Name: "crc16_genibus", Width: 16, Poly: 0x1021, Init: 0xffff, XorOut: 0xffff, Check: 0xd64e},
	{Name: "crc16_ibm", Width: 16, Poly: 0x8005, RefIn: true, RefOut: true, Check: 0xbb3d},
	{Name: "crc16_maxim", Width: 16, Poly: 0x8005, XorOut: 0xffff, RefIn: true, RefOut: true, Check: 0x44c2},
	{Name: "crc16_mcrf4xx", Width: 16, Poly: 0x1021, Init: 0xffff, RefIn: true, RefOut: true, Check: 0x6f91},
	{Name: "crc16_riello", Width: 16, Poly: 0x1021, Init: 0xb2aa, RefIn: true, RefOut: true, Check: 0x63d0},
	{Name: "crc16_t10_dif", Width: 16, Poly: 0x8bb7, Check: 0xd0db},
	{Name: "crc16_teledisk", Width: 16, Poly: 0xa097, Check: 0x0fb3},
	{Name: "crc16_tms37157", Width: 16, Poly: 0x1021, Init: 0x89ec, RefIn: true, RefOut: true, Check: 0x26b1},
	{Name: "crc16_usb", Width: 16, Poly: 0x8005, Init: 0xffff, XorOut: 0xffff, RefIn: true, RefOut: true, Check: 0xb4c8},
	{Name: "crc16_a", Width: 16, Poly: 0x1021, Init: 0xc6c6, RefIn: true, RefOut: true, Check: 0xbf05},
	{Name: "crc16_kermit", Width: 16, Poly: 0x1021, RefIn: true, RefOut: true, Check: 0x2189},
	{Name: "crc16_modbus", Width: 16, Poly: 0x8005, Init: 0xffff, RefIn: true, RefOut: true, Check: 0x4b37},
	{Name: "crc16_x25", Width: 16, Poly: 0x1021, Init: 0xffff, XorOut: 0xffff, RefIn: true, RefOut: true, Check: 0x906e},
	{Name: "crc16_xmodem", Width: 16, Poly: 0x1021, Check: 0x31c3},
	// CRC-32
	{Name: "crc32", Width: 32, Poly: 0x04c11db7, Init: 0xffffffff, XorOut: 0xffffffff, RefIn: true, RefOut: true, Check: 0xcbf43926, source: ieeeTable},
	{Name: "crc32_bzip2", Width: 32, Poly: 0x04c11db7, Init: 0xffffffff, XorOut: 0xffffffff, Check: 0xfc891918},
	{Name: "crc32_c", Width: 32, Poly: 0x1edc6f41, Init: 0xffffffff, XorOut: 0xffffffff, RefIn: true, RefOut: true, Check: 0xe3069283, source: castagnoliTable},
	{Name: "crc32_d", Width: 32, Poly: 0xa833982b, Init: 0xffffffff, XorOut: 0xffffffff, RefIn: true, RefOut: true, Check: 0x87315576},
	{Name: "crc32_mpeg2", Width: 32, Poly: 0x04c11db7, Init: 0xffffffff, Check: 0x0376e6e7},
	{Name: "crc32_posix", Width: 32, Poly: 0x04c11db7, XorOut: 0xffffffff, Check: 0x765e7680},
	{Name: "crc32_q", Width: 32, Poly: 0x814141ab, Check: 0x3010bf7f},
	{Name: "crc32_jamcrc", Width: 32, Poly: 0x04c11db7, Init: 0xffffffff, RefIn: true, RefOut: true, Check: 0x340bc6d9, source: ieeeTable},
	{Name: "crc32_xfer", Width: 32, Poly: 0x000000af, Check: 0xbd0be338},
	// CRC-64
	{Name: "crc64_ecma_182", Width: 64, Poly: 0x42f0e1eba9ea3693, Check: 0x6c40df5f0b497347},
	{Name: "crc64_go_iso", Width: 64, Poly: 0x1b, Init: 0xffffffffffffffff, XorOut: 0xffffffffffffffff, RefIn: true, RefOut: true, Check: 0xb90956c775a41001, source: isoTable},
	{Name: "crc64_we", Width: 64, Poly: 0x42f0e1eba9ea3693, Init: 0xffffffffffffffff, XorOut: 0xffffffffffffffff, Check: 0x62ec59e3f1a4f00a},
	{Name: "crc64_xz", Width: 64, Poly: 0x42f0e1eba9ea3693, Init: 0xffffffffffffffff, XorOut: 0xffffffffffffffff, RefIn: true, RefOut: true, Check: 0x995dc9bbdf1939fa, source: ecmaTable},
}

// aliases maps normalized catalogue names that differ from model names.
var aliases = map[string]string{
	"crc32_iso_hdlc":    "crc32",
	"crc32c":            "crc32_c",
	"crc32_castagnoli":  "crc32_c",
	"crc32_iscsi":       "crc32_c",
	"crc32_mpeg_2":      "crc32_mpeg2",
	"crc32_cksum":       "crc32_posix",
	"crc16_ibm_3740":    "crc16_ccitt_false",
	"crc16_x_25":        "crc16_x25",
	"crc16_umts":        "crc16_buypass",
	"crc16_spi_fujitsu": "crc16_aug_ccitt",
	"crc8_i_432_1":      "crc8_itu",
	"crc8_smbus":        "crc8",
	"crc8_gsm_a":        "crc8_sae_j1850_zero",
	"crc8_tech_3250":    "crc8_ebu",
	"crc8_autosar":      "crc8_8h2f",
	"crc64_ecma":        "crc64_ecma_182",
}

var byName = func() map[string]*Model {
	m := make(map[string]*Model, len(models))
	for _, model := range models {
		m[model.Name] = model
	}

	return m
}()

// Lookup returns the catalog model with the given name.
// Names are matched case-insensitively, and published names such as
// "CRC-32" or "CRC-16/XMODEM" resolve to "crc32" and "crc16_xmodem".
func Lookup(name string) (*Model, error) {
	key := normalize(name)
	if alias, ok := aliases[key]; ok {
		key = alias
	}

	m, ok := byName[key]
	if !ok {
		return nil, fmt.Errorf("crc.Lookup: %w %q", ErrUnknownModel, name)
	}

	return m, nil
}

// Names returns the sorted names of all catalog models.
func Names() []string {
	names := make([]string, 0, len(models))
	for _, m := range models {
		names = append(names, m.Name)
	}

	sort.Strings(names)
	return names
}

func normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "/", "_")
	if strings.HasPrefix(s, "crc-") {
		s = "crc" + s[len("crc-"):]
	}

	return strings.ReplaceAll(s, "-", "_")
}

// Reflected reports whether the model uses the reflected table.
func (m *Model) Reflected() bool {
	return m.RefIn && m.RefOut
}

// String returns the name of the model.
func (m *Model) String() string {
	return m.Name
}

// ModelParams returns the engine parameters of m for a register of type T.
// The initial value of a reflected model is converted to reflected order.
func ModelParams[T Word](m *Model) (Params[T], error) {
	start := m.Init
	if m.Reflected() {
		start = bits.Reverse(start, m.Width)
	}

	p := Params[T]{
		Width:  m.Width,
		Poly:   T(m.Poly),
		Init:   T(start),
		XorOut: T(m.XorOut),
		RefIn:  m.RefIn,
		RefOut: m.RefOut,
	}

	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("crc.ModelParams: model %s: %w", m.Name, err)
	}

	return p, nil
}

// ModelTable returns the lookup table of m for a register of type T.
// Tables are built once per model and register type, and are shared.
func ModelTable[T Word](m *Model) (*Table[T], error) {
	if _, err := ModelParams[T](m); err != nil {
		return nil, err
	}

	size := bits.Size[T]()
	if t, ok := m.typed.Load(size); ok {
		return t.(*Table[T]), nil
	}

	base := m.baseTable()
	t := new(Table[T])
	for i, v := range base {
		t[i] = T(v)
	}

	actual, _ := m.typed.LoadOrStore(size, t)
	return actual.(*Table[T]), nil
}

// NewEngine returns an Engine for m with a register of type T.
func NewEngine[T Word](m *Model) (*Engine[T], error) {
	p, err := ModelParams[T](m)
	if err != nil {
		return nil, err
	}

	t, err := ModelTable[T](m)
	if err != nil {
		return nil, err
	}

	return New(p, t), nil
}

func (m *Model) baseTable() *Table[uint64] {
	m.once.Do(func() {
		if m.source != nil {
			m.table = m.source()
			return
		}

		m.table = MakeTable(Params[uint64]{
			Width:  m.Width,
			Poly:   m.Poly,
			RefIn:  m.RefIn,
			RefOut: m.RefOut,
		})
	})

	return m.table
}

func widen[T Word](t *Table[T]) *Table[uint64] {
	w := new(Table[uint64])
	for i, v := range t {
		w[i] = uint64(v)
	}

	return w
}

func ieeeTable() *Table[uint64] {
	return widen((*Table[uint32])(crc32.IEEETable))
}

func castagnoliTable() *Table[uint64] {
	return widen((*Table[uint32])(crc32.MakeTable(crc32.Castagnoli)))
}

func ecmaTable() *Table[uint64] {
	return (*Table[uint64])(crc64.MakeTable(crc64.ECMA))
}

func isoTable() *Table[uint64] {
	return (*Table[uint64])(crc64.MakeTable(crc64.ISO))
}
