// Command bench times Prove and Verify for each protocol wrapper and,
// optionally, renders the results as a bar chart.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/anupsv/sigmaproofs/pkg/dleq"
	"github.com/anupsv/sigmaproofs/pkg/group"
	"github.com/anupsv/sigmaproofs/pkg/pedersen"
	"github.com/anupsv/sigmaproofs/pkg/schnorr"
)

type result struct {
	name       string
	proveMean  time.Duration
	verifyMean time.Duration
}

func timeit(iterations int, f func()) time.Duration {
	start := time.Now()
	for i := 0; i < iterations; i++ {
		f()
	}
	return time.Since(start) / time.Duration(iterations)
}

func randomScalar() group.Scalar {
	s, err := group.RandomScalar()
	if err != nil {
		panic(err)
	}
	return s
}

func benchSchnorr(iterations int) result {
	x := randomScalar()
	y := group.ScalarBaseMul(x)
	msg := []byte("bench")
	var proof []byte

	proveMean := timeit(iterations, func() {
		p, err := schnorr.Prove(x, y, msg)
		if err != nil {
			panic(err)
		}
		proof = p
	})
	verifyMean := timeit(iterations, func() {
		if !schnorr.Verify(y, msg, proof) {
			panic("schnorr: generated proof failed to verify")
		}
	})
	return result{name: "schnorr", proveMean: proveMean, verifyMean: verifyMean}
}

func benchDLEQ(iterations int) result {
	x := randomScalar()
	g1 := group.GeneratorElement()
	g2 := group.ScalarBaseMul(randomScalar())
	h1 := group.ScalarMul(x, g1)
	h2 := group.ScalarMul(x, g2)
	msg := []byte("bench")
	var proof []byte

	proveMean := timeit(iterations, func() {
		p, err := dleq.Prove(x, g1, h1, g2, h2, msg)
		if err != nil {
			panic(err)
		}
		proof = p
	})
	verifyMean := timeit(iterations, func() {
		if !dleq.Verify(g1, h1, g2, h2, msg, proof) {
			panic("dleq: generated proof failed to verify")
		}
	})
	return result{name: "dleq", proveMean: proveMean, verifyMean: verifyMean}
}

func benchPedersen(iterations int) result {
	x, r := randomScalar(), randomScalar()
	g := group.GeneratorElement()
	h := group.ScalarBaseMul(randomScalar())
	c := pedersen.Commit(x, r, g, h)
	msg := []byte("bench")
	var proof []byte

	proveMean := timeit(iterations, func() {
		p, err := pedersen.Prove(x, r, g, h, c, msg)
		if err != nil {
			panic(err)
		}
		proof = p
	})
	verifyMean := timeit(iterations, func() {
		if !pedersen.Verify(g, h, c, msg, proof) {
			panic("pedersen: generated proof failed to verify")
		}
	})
	return result{name: "pedersen", proveMean: proveMean, verifyMean: verifyMean}
}

func renderChart(path string, results []result) error {
	bars := make([]chart.Value, 0, len(results)*2)
	for _, r := range results {
		bars = append(bars,
			chart.Value{Value: float64(r.proveMean.Microseconds()), Label: r.name + " prove"},
			chart.Value{Value: float64(r.verifyMean.Microseconds()), Label: r.name + " verify"},
		)
	}
	graph := chart.BarChart{
		Title:      "sigma proof timings (microseconds)",
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Height:     512,
		BarWidth:   60,
		Bars:       bars,
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return graph.Render(chart.PNG, f)
}

func main() {
	iterations := flag.Int("iterations", 200, "iterations per protocol")
	chartPath := flag.String("chart", "", "write a PNG bar chart of the results to this path (optional)")
	flag.Parse()

	if *iterations < 1 {
		fmt.Fprintln(os.Stderr, "error: iterations must be at least 1")
		os.Exit(1)
	}

	results := []result{
		benchSchnorr(*iterations),
		benchDLEQ(*iterations),
		benchPedersen(*iterations),
	}

	fmt.Printf("%-10s %12s %12s\n", "protocol", "prove", "verify")
	for _, r := range results {
		fmt.Printf("%-10s %12s %12s\n", r.name, r.proveMean, r.verifyMean)
	}

	if *chartPath != "" {
		if err := renderChart(*chartPath, results); err != nil {
			fmt.Fprintf(os.Stderr, "error rendering chart: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("chart written to %s\n", *chartPath)
	}
}
