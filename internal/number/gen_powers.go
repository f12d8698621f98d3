//go:build ignore

// gen_powers writes eisel_lemire_table.go.
//
//	go run gen_powers.go
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"math/big"
	"os"
)

const (
	minExp10 = -348
	maxExp10 = 347
)

func main() {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by gen_powers.go; DO NOT EDIT.\n\n")
	buf.WriteString("package number\n\n")
	buf.WriteString("// Range of exponents covered by detailedPowersOfTen.\n")
	fmt.Fprintf(&buf, "const (\n\tdetailedPowersOfTenMinExp10 = %d\n\tdetailedPowersOfTenMaxExp10 = %+d\n)\n\n", minExp10, maxExp10)
	buf.WriteString("// detailedPowersOfTen holds the 128-bit mantissa of 10^q, truncated and\n")
	buf.WriteString("// normalized so the high bit is set, as {low, high} word pairs.\n")
	buf.WriteString("var detailedPowersOfTen = [...][2]uint64{\n")
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))
	for q := minExp10; q <= maxExp10; q++ {
		m := mantissa128(q)
		lo := new(big.Int).And(m, mask)
		hi := new(big.Int).Rsh(m, 64)
		fmt.Fprintf(&buf, "\t{0x%016X, 0x%016X}, // 1e%d\n", lo.Uint64(), hi.Uint64(), q)
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("eisel_lemire_table.go", src, 0o644); err != nil {
		log.Fatal(err)
	}
}

// mantissa128 returns floor(10^q * 2^k) for the k that leaves exactly 128 bits.
func mantissa128(q int) *big.Int {
	ten := big.NewInt(10)
	if q >= 0 {
		v := new(big.Int).Exp(ten, big.NewInt(int64(q)), nil)
		if n := v.BitLen(); n >= 128 {
			return v.Rsh(v, uint(n-128))
		}
		return v.Lsh(v, uint(128-v.BitLen()))
	}
	d := new(big.Int).Exp(ten, big.NewInt(int64(-q)), nil)
	k := 128 + d.BitLen()
	for {
		m := new(big.Int).Lsh(big.NewInt(1), uint(k))
		m.Quo(m, d)
		switch {
		case m.BitLen() > 128:
			k--
		case m.BitLen() < 128:
			k++
		default:
			return m
		}
	}
}
