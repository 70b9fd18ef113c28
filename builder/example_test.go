// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/volstat/builder"
)

// ExampleBuildPulse prints one period of the default rectangular pulse with a
// doubled amplitude.
func ExampleBuildPulse() {
	xs := builder.BuildPulse(8, 0, builder.WithAmplitude(2))
	fmt.Println(xs)
	// Output:
	// [2 2 2 2 0 0 0 0]
}

func ExampleFromSlice() {
	series := builder.FromSlice([]int{1, 2, 3})
	fmt.Println(len(series), series)
	// Output:
	// 3 [1 2 3]
}
