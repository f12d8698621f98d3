package refcheck

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strconv"
	"testing"
)

func nextUp(f float64) float64   { return math.Nextafter(f, math.Inf(1)) }
func nextDown(f float64) float64 { return math.Nextafter(f, math.Inf(-1)) }

func TestCompare(t *testing.T) {
	one := Result{Valid: true, Float: 1}
	tests := []struct {
		name      string
		got, want Result
		outcome   Outcome
		ulp       uint64
	}{
		{"exact float", one, one, Exact, 0},
		{"one ulp", Result{Valid: true, Float: nextUp(1)}, one, WithinULP, 1},
		{"two ulp", Result{Valid: true, Float: nextUp(nextUp(1))}, one, Over, 2},
		{"both reject", Result{}, Result{}, Rejected, 0},
		{"accept", one, Result{}, AcceptMismatch, 0},
		{"reject", Result{}, one, AcceptMismatch, 0},
		{"kind", Result{Valid: true, IsInt: true, Int: 1}, one, KindMismatch, 0},
		{"int equal", Result{Valid: true, IsInt: true, Int: -5}, Result{Valid: true, IsInt: true, Int: -5}, Exact, 0},
		{"int differs", Result{Valid: true, IsInt: true, Int: -5}, Result{Valid: true, IsInt: true, Int: 5}, Over, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, ulp := Compare(tt.got, tt.want, 1)
			if o != tt.outcome || ulp != tt.ulp {
				t.Errorf("Compare = (%v, %d), want (%v, %d)", o, ulp, tt.outcome, tt.ulp)
			}
		})
	}
}

func TestCandidate(t *testing.T) {
	tests := []struct {
		lit  string
		want Result
	}{
		{"0", Result{Valid: true, IsInt: true}},
		{"-7", Result{Valid: true, IsInt: true, Int: -7}},
		{"2.5", Result{Valid: true, Float: 2.5}},
		{"1e400", Result{}},
		{"01", Result{}},
		{"1 ", Result{}},
		{"1,2", Result{}},
		{"", Result{}},
	}
	for _, tt := range tests {
		t.Run(tt.lit, func(t *testing.T) {
			if got := Candidate(nil, tt.lit); got != tt.want {
				t.Errorf("Candidate(%q) = %+v, want %+v", tt.lit, got, tt.want)
			}
		})
	}
}

func TestCheckEdgeLiterals(t *testing.T) {
	r, err := Check(context.Background(), EdgeLiterals, Options{Workers: 2, MaxULP: 1, MaxFailures: 10})
	if err != nil {
		t.Fatal(err)
	}
	if r.Total != len(EdgeLiterals) {
		t.Errorf("Total = %d, want %d", r.Total, len(EdgeLiterals))
	}
	if r.Failures() != 0 {
		t.Errorf("edge literals failed: %+v", r.Mismatches)
	}
	if r.Rejected == 0 {
		t.Error("edge corpus contains invalid literals; none were counted as rejected")
	}
}

func TestCheckGenerated(t *testing.T) {
	count := 2000
	if testing.Short() {
		count = 200
	}
	lits := Generate(GenerateOptions{
		Seed: 11, Count: count,
		Integers: true, Shortest: true, Full: true, Halfway: true, Long: true, Edge: true,
	})
	r, err := Check(context.Background(), lits, Options{MaxULP: 1, MaxFailures: 10})
	if err != nil {
		t.Fatal(err)
	}
	if r.Failures() != 0 {
		t.Fatalf("%d failures, first: %+v", r.Failures(), r.Mismatches)
	}
	if r.MaxULP > 1 {
		t.Errorf("MaxULP = %d", r.MaxULP)
	}
	if r.Exact+r.WithinULP+r.Rejected != len(lits) {
		t.Errorf("outcome counts do not add up: %+v", r)
	}
}

// An exponent past the parser's guard is rejected, while strconv reads the
// literal as zero. That gives a deterministic mismatch to place anywhere.
const guardedZero = "0e999999999999"

func TestCheckMismatchOrder(t *testing.T) {
	lits := make([]string, 3000)
	for i := range lits {
		lits[i] = strconv.Itoa(i)
	}
	for _, i := range []int{2500, 5, 1500} {
		lits[i] = guardedZero
	}
	r, err := Check(context.Background(), lits, Options{Workers: 4, MaxFailures: 2})
	if err != nil {
		t.Fatal(err)
	}
	if r.AcceptMismatch != 3 || r.Failures() != 3 {
		t.Fatalf("unexpected report %+v", r)
	}
	if len(r.Mismatches) != 2 {
		t.Fatalf("kept %d mismatches, want 2", len(r.Mismatches))
	}
	if r.Mismatches[0].Index != 5 || r.Mismatches[1].Index != 1500 {
		t.Errorf("mismatches out of order: %+v", r.Mismatches)
	}
	m := r.Mismatches[0]
	if m.Literal != guardedZero || m.Got.Valid || !m.Want.Valid {
		t.Errorf("mismatch = %+v", m)
	}
}

func TestCheckCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Check(ctx, Generate(GenerateOptions{Seed: 1, Count: 100, Integers: true}), Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestFromDocument(t *testing.T) {
	doc := []byte(`{"a": 1, "2": [1.5e3, -0, {"b": 7e-2}], "s": "12", "n": null, "t": true}`)
	got, err := FromDocument(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1", "1.5e3", "-0", "7e-2"}
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if _, err := FromDocument([]byte(`{"a": }`)); !errors.Is(err, ErrInvalidDocument) {
		t.Errorf("err = %v, want ErrInvalidDocument", err)
	}
}

func TestDumpRoundTrip(t *testing.T) {
	in := &Dump{
		Seed:   9,
		MaxULP: 1,
		Mismatches: []Mismatch{{
			Index:   4,
			Literal: "2.2250738585072011e-308",
			Outcome: Over,
			Got:     Result{Valid: true, Float: 2.2250738585072014e-308},
			Want:    Result{Valid: true, Float: 2.225073858507201e-308},
			ULP:     2,
		}},
	}
	var buf bytes.Buffer
	if err := WriteDump(&buf, in); err != nil {
		t.Fatal(err)
	}
	out, err := ReadDump(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if out.Seed != in.Seed || out.MaxULP != in.MaxULP || len(out.Mismatches) != 1 {
		t.Fatalf("ReadDump = %+v", out)
	}
	if out.Mismatches[0] != in.Mismatches[0] {
		t.Errorf("mismatch = %+v, want %+v", out.Mismatches[0], in.Mismatches[0])
	}
	if lits := out.Literals(); len(lits) != 1 || lits[0] != "2.2250738585072011e-308" {
		t.Errorf("Literals() = %q", lits)
	}
}

func TestReadDumpTruncated(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDump(&buf, &Dump{}); err != nil {
		t.Fatal(err)
	}
	raw := buf.Bytes()
	if _, err := ReadDump(bytes.NewReader(raw[:len(raw)/2])); err == nil {
		t.Error("truncated dump should fail")
	}
}

func TestOutcomeText(t *testing.T) {
	for o := Exact; o <= AcceptMismatch; o++ {
		text, err := o.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Outcome
		if err := back.UnmarshalText(text); err != nil || back != o {
			t.Errorf("%v: round trip gave %v, %v", o, back, err)
		}
	}
	var o Outcome
	if err := o.UnmarshalText([]byte("nope")); err == nil {
		t.Error("unknown outcome name should fail")
	}
}
