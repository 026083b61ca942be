// Command generate-golden writes the golden vectors checked by the calc
// tests. Every expected value is computed with math/big, which serves as
// the oracle for the kernel.
//
//	go run ./cmd/generate-golden -o internal/calc/testdata/golden.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
)

// Vector is one golden evaluation.
type Vector struct {
	Op        string `json:"op"`
	A         string `json:"a"`
	B         string `json:"b,omitempty"`
	Result    string `json:"result"`
	Remainder string `json:"remainder,omitempty"`
}

// shift is the bit count used for the lsh and rsh vectors; it is not a
// multiple of either digit width.
const shift = 67

var binaryOps = []string{"add", "sub", "mul", "quo", "rem", "quorem", "and", "or", "xor", "cmp"}

var unaryOps = []string{"sqr", "not", "lsh", "rsh"}

// operandPairs returns operand pairs covering digit boundaries and mixed
// signs.
func operandPairs() [][2]*big.Int {
	pow := func(base, exp int64) *big.Int { return new(big.Int).Exp(big.NewInt(base), big.NewInt(exp), nil) }
	sub := func(x *big.Int, d int64) *big.Int { return new(big.Int).Sub(x, big.NewInt(d)) }
	add := func(x *big.Int, d int64) *big.Int { return new(big.Int).Add(x, big.NewInt(d)) }
	neg := func(x *big.Int) *big.Int { return new(big.Int).Neg(x) }
	dec := func(s string) *big.Int {
		x, _ := new(big.Int).SetString(s, 10)
		return x
	}

	return [][2]*big.Int{
		{big.NewInt(0), big.NewInt(1)},
		{big.NewInt(-1), big.NewInt(1)},
		{sub(pow(2, 32), 1), sub(pow(2, 32), 1)},
		{sub(pow(2, 64), 1), pow(2, 64)},
		{dec("-123456789012345678901234567890"), big.NewInt(987654321)},
		{sub(pow(2, 521), 1), sub(pow(2, 127), 1)},
		{neg(add(pow(10, 100), 7)), add(pow(10, 40), 9)},
		{pow(3, 200), neg(pow(7, 90))},
	}
}

// evalBig evaluates op on a and b with math/big. It reports false when the
// operation is undefined, such as a division by zero.
func evalBig(op string, a, b *big.Int) (result, remainder *big.Int, ok bool) {
	z := new(big.Int)
	switch op {
	case "add":
		return z.Add(a, b), nil, true
	case "sub":
		return z.Sub(a, b), nil, true
	case "mul":
		return z.Mul(a, b), nil, true
	case "sqr":
		return z.Mul(a, a), nil, true
	case "quo", "rem", "quorem":
		if b.Sign() == 0 {
			return nil, nil, false
		}
		q, r := new(big.Int).QuoRem(a, b, new(big.Int))
		switch op {
		case "quo":
			return q, nil, true
		case "rem":
			return r, nil, true
		}
		return q, r, true
	case "and":
		return z.And(a, b), nil, true
	case "or":
		return z.Or(a, b), nil, true
	case "xor":
		return z.Xor(a, b), nil, true
	case "not":
		return z.Not(a), nil, true
	case "cmp":
		return big.NewInt(int64(a.Cmp(b))), nil, true
	case "lsh":
		return z.Lsh(a, shift), nil, true
	case "rsh":
		return z.Rsh(a, shift), nil, true
	}
	return nil, nil, false
}

func generate() []Vector {
	var vectors []Vector
	for _, pair := range operandPairs() {
		a, b := pair[0], pair[1]
		for _, op := range binaryOps {
			if v, ok := vector(op, a, b, b.String()); ok {
				vectors = append(vectors, v)
			}
		}
		for _, op := range unaryOps {
			bText := ""
			if op == "lsh" || op == "rsh" {
				bText = fmt.Sprint(shift)
			}
			if v, ok := vector(op, a, b, bText); ok {
				vectors = append(vectors, v)
			}
		}
	}
	return vectors
}

func vector(op string, a, b *big.Int, bText string) (Vector, bool) {
	r, rem, ok := evalBig(op, a, b)
	if !ok {
		return Vector{}, false
	}
	v := Vector{Op: op, A: a.String(), B: bText, Result: r.String()}
	if rem != nil {
		v.Remainder = rem.String()
	}
	return v, true
}

func main() {
	out := flag.String("o", "internal/calc/testdata/golden.json", "Output file.")
	flag.Parse()

	vectors := generate()
	data, err := json.MarshalIndent(vectors, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "encoding vectors:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, append(data, '\n'), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "writing vectors:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d vectors to %s\n", len(vectors), *out)
}
