package simplex_test

import (
	"fmt"

	"github.com/katalvlaran/simplexfield/simplex"
)

// ExampleNew demonstrates deterministic construction: any Source with a
// Float64() method works, including *math/rand.Rand.
func ExampleNew() {
	a, _ := simplex.New(simplex.WithSource(&lcgSource{state: 1}))
	b, _ := simplex.New(simplex.WithSource(&lcgSource{state: 1}))

	fmt.Println(a.Raw2D(0.5, 0.5) == b.Raw2D(0.5, 0.5))
	// Output:
	// true
}

// ExampleGenerator_Raw2D evaluates single-octave 2D noise at one point.
func ExampleGenerator_Raw2D() {
	g, err := simplex.New(simplex.WithSource(&lcgSource{state: 1}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f\n", g.Raw2D(0.5, 0.5))
	// Output:
	// -0.3078
}

// ExampleGenerator_Raw3D evaluates single-octave 3D noise at one point.
func ExampleGenerator_Raw3D() {
	g, err := simplex.New(simplex.WithSource(&lcgSource{state: 1}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f\n", g.Raw3D(0.1, 0.2, 0.3))
	// Output:
	// 0.5139
}
