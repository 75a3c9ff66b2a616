// Command crcgen prints the lookup table of a catalog CRC model,
// either as a bare list of words or as a Go source file.
//
// Every entry is checked against a bit-serial computation before it is
// written.
//
// Usage:
//
//	crcgen -model crc32
//	crcgen -model crc16_xmodem -pkg tables -var xmodem -o xmodem.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"

	"github.com/pchchv/crc"
	"github.com/pchchv/crc/internal/bits"
	"go.uber.org/zap"
)

func main() {
	model := flag.String("model", "crc32", "catalog model name")
	pkg := flag.String("pkg", "", "emit a Go source file for this package")
	name := flag.String("var", "", "variable name of the emitted table (default: model name)")
	out := flag.String("o", "", "output file (default: stdout)")
	list := flag.Bool("list", false, "list catalog models and exit")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	if *list {
		for _, n := range crc.Names() {
			fmt.Println(n)
		}
		return
	}

	m, err := crc.Lookup(*model)
	if err != nil {
		logger.Fatal("unknown model", zap.String("model", *model), zap.Error(err))
	}

	table, err := crc.ModelTable[uint64](m)
	if err != nil {
		logger.Fatal("could not build table", zap.String("model", m.Name), zap.Error(err))
	}

	if err := verify(m, table); err != nil {
		logger.Fatal("table verification failed", zap.String("model", m.Name), zap.Error(err))
	}

	var src []byte
	if *pkg == "" {
		src = []byte(words(table, m.Width) + "\n")
	} else {
		v := *name
		if v == "" {
			v = identifier(m.Name)
		}

		if src, err = source(m, table, *pkg, v); err != nil {
			logger.Fatal("could not format source", zap.String("model", m.Name), zap.Error(err))
		}
	}

	if *out == "" {
		os.Stdout.Write(src)
		return
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		logger.Fatal("could not write table", zap.String("file", *out), zap.Error(err))
	}

	logger.Info("table written",
		zap.String("model", m.Name),
		zap.Uint("width", m.Width),
		zap.String("file", *out),
	)
}

// verify compares every table entry with its bit-serial remainder.
func verify(m *crc.Model, table *crc.Table[uint64]) error {
	ref := bits.Params{Width: m.Width, Poly: m.Poly, RefIn: m.RefIn, RefOut: m.RefOut}
	for i, v := range table {
		want, err := ref.Entry(uint8(i))
		if err != nil {
			return err
		}

		if v != want {
			return fmt.Errorf("crcgen.verify: entry %d: expected 0x%X, got 0x%X", i, want, v)
		}
	}

	return nil
}

// words formats the table eight words per line.
func words(table *crc.Table[uint64], width uint) string {
	var b strings.Builder
	for i, v := range table {
		switch {
		case i == 0:
		case i%8 == 0:
			b.WriteString(",\n")
		default:
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "0x%0*X", int(width/4), v)
	}

	b.WriteString(",")
	return b.String()
}

// register returns the smallest register type holding width bits.
func register(width uint) string {
	switch {
	case width <= 8:
		return "uint8"
	case width <= 16:
		return "uint16"
	case width <= 32:
		return "uint32"
	default:
		return "uint64"
	}
}

func identifier(model string) string {
	parts := strings.Split(model, "_")
	for i := 1; i < len(parts); i++ {
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}

	return strings.Join(parts, "")
}

func source(m *crc.Model, table *crc.Table[uint64], pkg, name string) ([]byte, error) {
	p, err := crc.ModelParams[uint64](m)
	if err != nil {
		return nil, err
	}

	w := m.Width / 4
	reg := register(m.Width)
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by crcgen -model %s; DO NOT EDIT.\n\n", m.Name)
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import \"github.com/pchchv/crc\"\n\n")
	fmt.Fprintf(&b, "// %sParams are the parameters of %s.\n", name, m.Name)
	fmt.Fprintf(&b, "var %sParams = crc.Params[%s]{\n", name, reg)
	fmt.Fprintf(&b, "Width: %d,\n", p.Width)
	fmt.Fprintf(&b, "Poly: 0x%0*X,\n", w, p.Poly)
	fmt.Fprintf(&b, "Init: 0x%0*X,\n", w, p.Init)
	fmt.Fprintf(&b, "XorOut: 0x%0*X,\n", w, p.XorOut)
	fmt.Fprintf(&b, "RefIn: %t,\n", p.RefIn)
	fmt.Fprintf(&b, "RefOut: %t,\n", p.RefOut)
	fmt.Fprintf(&b, "}\n\n")
	fmt.Fprintf(&b, "// %sTable is the lookup table of %s.\n", name, m.Name)
	fmt.Fprintf(&b, "var %sTable = crc.Table[%s]{\n%s\n}\n", name, reg, words(table, m.Width))
	return format.Source(b.Bytes())
}
