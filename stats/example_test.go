// SPDX-License-Identifier: MIT

package stats_test

import (
	"fmt"

	"github.com/katalvlaran/volstat/stats"
)

// ExampleStandardDeviation contrasts the two denominator conventions on a
// tiny series.
func ExampleStandardDeviation() {
	xs := []float64{1, 2, 3}

	pop, _ := stats.StandardDeviation(xs, stats.Population)
	smp, _ := stats.StandardDeviation(xs, stats.Sample)
	fmt.Printf("population=%.4f sample=%.4f\n", pop, smp)
	// Output:
	// population=0.8165 sample=1.0000
}

// ExampleVariance_absence shows that degenerate inputs report "no result"
// instead of a sentinel number.
func ExampleVariance_absence() {
	_, ok := stats.Variance([]int{}, stats.Population)
	fmt.Println("empty:", ok)

	_, ok = stats.Variance([]int{9}, stats.Sample)
	fmt.Println("single sample:", ok)

	v, ok := stats.Variance([]int{9}, stats.Population)
	fmt.Println("single population:", v, ok)
	// Output:
	// empty: false
	// single sample: false
	// single population: 0 true
}

func ExampleSummarize() {
	prices := []int{128, 219, 316, 189, 512, 98, 155, 110, 468, 177, 203, 73, 252}

	s, err := stats.Summarize(prices, stats.Population)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("n=%d mean=%.4f var=%.4f std=%.4f\n", s.N, s.Mean, s.Variance, s.StdDev)
	// Output:
	// n=13 mean=223.0769 var=17020.5325 std=130.4628
}
