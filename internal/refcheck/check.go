package refcheck

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/biggeezerdevelopment/simdjson-numparse/internal/number"
	"github.com/biggeezerdevelopment/simdjson-numparse/internal/scanner"
)

// Outcome classifies one literal.
type Outcome uint8

const (
	Exact          Outcome = iota // same value, or both integers equal
	WithinULP                     // floats differ by at most Options.MaxULP
	Rejected                      // both sides reject the literal
	Over                          // floats differ by more than MaxULP, or integers differ
	KindMismatch                  // one side produced an integer, the other a float
	AcceptMismatch                // one side accepted, the other rejected
)

var outcomeNames = [...]string{
	Exact:          "exact",
	WithinULP:      "within-ulp",
	Rejected:       "rejected",
	Over:           "over",
	KindMismatch:   "kind-mismatch",
	AcceptMismatch: "accept-mismatch",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	for i, name := range outcomeNames {
		if name == string(text) {
			*o = Outcome(i)
			return nil
		}
	}
	return fmt.Errorf("refcheck: unknown outcome %q", text)
}

// Failed reports whether o counts against a run.
func (o Outcome) Failed() bool { return o >= Over }

// Options controls Check.
type Options struct {
	Workers     int    // <= 0 means GOMAXPROCS
	MaxULP      uint64 // float distance still counted as a pass
	MaxFailures int    // mismatches kept in the report
}

// Mismatch records a literal whose outcome is a failure.
type Mismatch struct {
	Index   int     `msgpack:"index" json:"index"`
	Literal string  `msgpack:"literal" json:"literal"`
	Outcome Outcome `msgpack:"outcome" json:"outcome"`
	Got     Result  `msgpack:"got" json:"got"`
	Want    Result  `msgpack:"want" json:"want"`
	ULP     uint64  `msgpack:"ulp" json:"ulp"`
}

// Report aggregates a Check run.
type Report struct {
	Total          int        `json:"total"`
	Exact          int        `json:"exact"`
	WithinULP      int        `json:"within_ulp"`
	Rejected       int        `json:"rejected"`
	Over           int        `json:"over"`
	KindMismatch   int        `json:"kind_mismatch"`
	AcceptMismatch int        `json:"accept_mismatch"`
	MaxULP         uint64     `json:"max_ulp"`
	Mismatches     []Mismatch `json:"mismatches,omitempty"`
}

// Failures is the number of literals with a failing outcome.
func (r *Report) Failures() int {
	return r.Over + r.KindMismatch + r.AcceptMismatch
}

func (r *Report) count(o Outcome) {
	r.Total++
	switch o {
	case Exact:
		r.Exact++
	case WithinULP:
		r.WithinULP++
	case Rejected:
		r.Rejected++
	case Over:
		r.Over++
	case KindMismatch:
		r.KindMismatch++
	case AcceptMismatch:
		r.AcceptMismatch++
	}
}

func (r *Report) merge(o *Report) {
	r.Total += o.Total
	r.Exact += o.Exact
	r.WithinULP += o.WithinULP
	r.Rejected += o.Rejected
	r.Over += o.Over
	r.KindMismatch += o.KindMismatch
	r.AcceptMismatch += o.AcceptMismatch
	r.MaxULP = max(r.MaxULP, o.MaxULP)
	r.Mismatches = append(r.Mismatches, o.Mismatches...)
}

// Compare classifies got against want.
func Compare(got, want Result, maxULP uint64) (Outcome, uint64) {
	switch {
	case !got.Valid && !want.Valid:
		return Rejected, 0
	case got.Valid != want.Valid:
		return AcceptMismatch, 0
	case got.IsInt != want.IsInt:
		return KindMismatch, 0
	case got.IsInt:
		if got.Int == want.Int {
			return Exact, 0
		}
		d := uint64(got.Int) - uint64(want.Int)
		if got.Int < want.Int {
			d = uint64(want.Int) - uint64(got.Int)
		}
		return Over, d
	}
	ulp := ULP(got.Float, want.Float)
	switch {
	case ulp == 0:
		return Exact, 0
	case ulp <= maxULP:
		return WithinULP, ulp
	default:
		return Over, ulp
	}
}

// slot is a Sink holding the single value of one literal.
type slot struct{ r Result }

func (s *slot) AppendInt64(v int64) { s.r = Result{Valid: true, IsInt: true, Int: v} }

func (s *slot) AppendFloat64(v float64) { s.r = Result{Valid: true, Float: v} }

// Candidate converts lit with the number parser. pb is scratch space and may
// be nil.
func Candidate(pb *scanner.PaddedBuffer, lit string) Result {
	if lit == "" {
		return Result{}
	}
	var term scanner.Terminators
	for i := 0; i < len(lit); i++ {
		if term.IsStructuralOrWhitespace(lit[i]) {
			return Result{}
		}
	}
	if pb == nil {
		pb = scanner.NewPaddedBuffer(len(lit))
	}
	buf := pb.Load([]byte(lit))
	var s slot
	if err := number.Parse(buf, 0, lit[0] == '-', term, &s); err != nil {
		return Result{}
	}
	return s.r
}

// Check runs every literal through both conversions on opts.Workers
// goroutines. Mismatches are reported in input order.
func Check(ctx context.Context, literals []string, opts Options) (*Report, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := (len(literals) + workers*4 - 1) / (workers * 4)
	chunk = max(chunk, 256)

	var (
		mu    sync.Mutex
		total Report
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(literals); start += chunk {
		start := start
		end := min(start+chunk, len(literals))
		g.Go(func() error {
			part, err := checkRange(gctx, literals, start, end, opts)
			if err != nil {
				return err
			}
			mu.Lock()
			total.merge(part)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(total.Mismatches, func(i, j int) bool {
		return total.Mismatches[i].Index < total.Mismatches[j].Index
	})
	if len(total.Mismatches) > opts.MaxFailures {
		total.Mismatches = total.Mismatches[:opts.MaxFailures]
	}
	return &total, nil
}

func checkRange(ctx context.Context, literals []string, start, end int, opts Options) (*Report, error) {
	var r Report
	pb := scanner.NewPaddedBuffer(64)
	for i := start; i < end; i++ {
		if (i-start)&1023 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		lit := literals[i]
		got := Candidate(pb, lit)
		want := Reference(lit)
		o, ulp := Compare(got, want, opts.MaxULP)
		r.count(o)
		if got.Valid && want.Valid && !got.IsInt && !want.IsInt {
			r.MaxULP = max(r.MaxULP, ulp)
		}
		if o.Failed() && len(r.Mismatches) < opts.MaxFailures {
			r.Mismatches = append(r.Mismatches, Mismatch{
				Index:   i,
				Literal: lit,
				Outcome: o,
				Got:     got,
				Want:    want,
				ULP:     ulp,
			})
		}
	}
	return &r, nil
}
