// Command crcdemo checksums "hello ", "world" and "!!!" one at a time and
// accumulated, and checks that accumulating matches a single pass over
// "hello world!!!".
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pchchv/crc"
	"go.uber.org/zap"
)

var parts = []string{"hello ", "world", "!!!"}

func main() {
	model := flag.String("model", "crc32", "catalog model name")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	m, err := crc.Lookup(*model)
	if err != nil {
		logger.Fatal("unknown model", zap.String("model", *model), zap.Error(err))
	}

	e, err := crc.NewEngine[uint64](m)
	if err != nil {
		logger.Fatal("could not create engine", zap.String("model", m.Name), zap.Error(err))
	}

	if !run(os.Stdout, e, parts) {
		logger.Error("accumulated checksum differs from single pass", zap.String("model", m.Name))
		os.Exit(1)
	}
}

// run prints the checksum of every part, then of their concatenation,
// then the accumulated checksums and the final one.
// It reports whether the accumulated and single pass checksums agree.
func run(w io.Writer, e *crc.Engine[uint64], parts []string) bool {
	fmt.Fprintf(w, "\nCRC Test Start\n\n")
	for _, s := range parts {
		fmt.Fprintf(w, "0x%s ", e.Hex(e.Calc([]byte(s))))
	}

	crc1 := e.Calc([]byte(strings.Join(parts, "")))
	fmt.Fprintf(w, "0x%s\n", e.Hex(crc1))

	for _, s := range parts {
		fmt.Fprintf(w, "0x%s ", e.Hex(e.Accum([]byte(s))))
	}

	crc2 := e.Get()
	fmt.Fprintf(w, "0x%s\n", e.Hex(crc2))

	if crc1 != crc2 {
		fmt.Fprintf(w, "\nTest failed!!!\n\n")
		return false
	}

	fmt.Fprintf(w, "\nTest succeeded!!!\n\n")
	return true
}
