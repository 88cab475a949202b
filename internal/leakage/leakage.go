// Package leakage evaluates functions for timing side channels with a fixed-vs-random test in the style of dudect.
//
// Inputs are split into two classes: a single fixed input, and inputs drawn uniformly at random. The two classes are
// interleaved in random order, each call is timed, and Welch's t-test is applied to the two timing distributions. A
// large |t| (conventionally above 4.5) is strong evidence that the running time depends on the input. A small |t| is
// not proof of the converse.
package leakage

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	mrand "math/rand/v2"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Threshold is the |t| above which a Report is considered to show leakage.
const Threshold = 4.5

const (
	minNanos   = 1
	maxNanos   = int64(10 * time.Millisecond)
	sigFigures = 3

	// Measurements above this percentile of the combined distribution are discarded before the t-test, to cut
	// interrupts and preemption out of the tails.
	cropPercentile = 95.0
)

// ErrTooFewSamples is returned when fewer than two samples per class would be collected.
var ErrTooFewSamples = errors.New("leakage: too few samples")

// A Class identifies which population an input belongs to.
type Class uint8

const (
	Fixed Class = iota
	Random
)

func (c Class) String() string {
	switch c {
	case Fixed:
		return "fixed"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("Class(%d)", c)
	}
}

// A Target is a function under test.
type Target struct {
	// Name identifies the target in reports.
	Name string

	// InputLen is the length of each input passed to Run.
	InputLen int

	// Fixed is the input used for every Fixed-class sample. If nil, an all-zero input is used.
	Fixed []byte

	// Run is the operation being timed.
	Run func(in []byte)
}

// A Summary describes the timing distribution of one class, in nanoseconds.
type Summary struct {
	Count  int64
	Mean   float64
	StdDev float64
	P50    int64
	P99    int64
}

// A Report is the outcome of evaluating a Target.
type Report struct {
	Name   string
	Fixed  Summary
	Random Summary
	T      float64
}

// Leaky reports whether |T| exceeds Threshold.
func (r *Report) Leaky() bool {
	return math.Abs(r.T) > Threshold
}

// Evaluate times samples calls to the target, split between the two classes, and returns the resulting Report.
func Evaluate(ctx context.Context, target *Target, samples int) (*Report, error) {
	if samples < 4 {
		return nil, fmt.Errorf("%w: %d", ErrTooFewSamples, samples)
	}

	fixed := target.Fixed
	if fixed == nil {
		fixed = make([]byte, target.InputLen)
	}
	if len(fixed) != target.InputLen {
		return nil, fmt.Errorf("leakage: fixed input is %d bytes, want %d", len(fixed), target.InputLen)
	}

	// Generate every input up front so that only Run is inside the timed region.
	classes := make([]Class, samples)
	inputs := make([]byte, samples*target.InputLen)
	_, _ = rand.Read(inputs)
	for i := range classes {
		classes[i] = Class(mrand.IntN(2))
		if classes[i] == Fixed {
			copy(inputs[i*target.InputLen:], fixed)
		}
	}

	timings := make([]int64, samples)
	for i := range samples {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		in := inputs[i*target.InputLen : (i+1)*target.InputLen]
		start := time.Now()
		target.Run(in)
		timings[i] = int64(time.Since(start))
	}

	return analyze(target.Name, classes, timings)
}

func analyze(name string, classes []Class, timings []int64) (*Report, error) {
	all := newHistogram()
	for _, t := range timings {
		record(all, t)
	}
	limit := all.ValueAtQuantile(cropPercentile)

	hists := [2]*hdrhistogram.Histogram{newHistogram(), newHistogram()}
	for i, t := range timings {
		if t <= limit {
			record(hists[classes[i]], t)
		}
	}

	if hists[Fixed].TotalCount() < 2 || hists[Random].TotalCount() < 2 {
		return nil, fmt.Errorf("%w: %d fixed, %d random after cropping", ErrTooFewSamples,
			hists[Fixed].TotalCount(), hists[Random].TotalCount())
	}

	r := &Report{
		Name:   name,
		Fixed:  summarize(hists[Fixed]),
		Random: summarize(hists[Random]),
	}
	r.T = welch(r.Fixed, r.Random)
	return r, nil
}

func newHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(minNanos, maxNanos, sigFigures)
}

func record(h *hdrhistogram.Histogram, v int64) {
	_ = h.RecordValue(min(max(v, minNanos), maxNanos))
}

func summarize(h *hdrhistogram.Histogram) Summary {
	return Summary{
		Count:  h.TotalCount(),
		Mean:   h.Mean(),
		StdDev: h.StdDev(),
		P50:    h.ValueAtQuantile(50),
		P99:    h.ValueAtQuantile(99),
	}
}

// welch returns Welch's t statistic for the difference of the two means.
func welch(a, b Summary) float64 {
	se := math.Sqrt(a.StdDev*a.StdDev/float64(a.Count) + b.StdDev*b.StdDev/float64(b.Count))
	if se == 0 {
		if a.Mean == b.Mean {
			return 0
		}
		return math.Inf(int(math.Copysign(1, a.Mean-b.Mean)))
	}
	return (a.Mean - b.Mean) / se
}
