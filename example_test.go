package crc_test

import (
	"fmt"
	"log"

	"github.com/pchchv/crc"
)

func ExampleEngine_Accum() {
	m, err := crc.Lookup("crc32_mpeg2")
	if err != nil {
		log.Fatal(err)
	}

	e, err := crc.NewEngine[uint32](m)
	if err != nil {
		log.Fatal(err)
	}

	for _, s := range []string{"hello ", "world", "!!!"} {
		fmt.Printf("0x%s ", e.Hex(e.Accum([]byte(s))))
	}

	fmt.Printf("0x%s\n", e.Hex(e.Get()))
	fmt.Printf("0x%s\n", e.Hex(e.Calc([]byte("hello world!!!"))))
	// Output:
	// 0x89961f2b 0xbb08ec87 0x6f1d1424 0x6f1d1424
	// 0x6f1d1424
}

func ExampleNew() {
	p := crc.Params[uint16]{Width: 16, Poly: 0x1021}
	e := crc.New(p, crc.MakeTable(p))
	fmt.Printf("0x%s\n", e.Hex(e.Calc([]byte("123456789"))))
	// Output:
	// 0x31c3
}
