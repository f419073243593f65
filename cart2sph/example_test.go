package cart2sph_test

import (
	"fmt"

	"github.com/katalvlaran/cartsph/cart2sph"
)

// ExampleCoeffsForL builds the normalized p-shell matrix: rows m=-1,0,+1,
// columns x, y, z. Under the Schlegel–Frisch convention m=-1 picks x,
// m=0 picks z and m=+1 picks y.
func ExampleCoeffsForL() {
	C, err := cart2sph.CoeffsForL(1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	rows, cols := C.Dims()
	fmt.Printf("shape=(%d,%d)\n", rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			fmt.Printf("%5.1f", C.At(i, j))
		}
		fmt.Println()
	}
	// Output:
	// shape=(3,3)
	//   1.0  0.0  0.0
	//   0.0  0.0  1.0
	//   0.0  1.0  0.0
}

// ExampleCoeff shows the selection rule: xz cannot contribute to m=0 since
// lx+ly-|m| = 1 is odd, so the coefficient is an exact zero.
func ExampleCoeff() {
	c, err := cart2sph.Coeff(1, 0, 1, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(c == 0)
	// Output:
	// true
}

// ExampleCoeffs builds a sparsified family up to g shells and reports the
// shape of each matrix.
func ExampleCoeffs() {
	Cs, err := cart2sph.Coeffs(4,
		cart2sph.WithZeroSmall(),
		cart2sph.WithParallel(),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for l := 0; l <= 4; l++ {
		rows, cols := Cs[l].Dims()
		fmt.Printf("l=%d shape=(%d,%d)\n", l, rows, cols)
	}
	// Output:
	// l=0 shape=(1,1)
	// l=1 shape=(3,3)
	// l=2 shape=(5,6)
	// l=3 shape=(7,10)
	// l=4 shape=(9,15)
}

// ExampleCache demonstrates the explicit memoization wrapper: the second
// lookup is a map hit, not a rebuild.
func ExampleCache() {
	cache := cart2sph.NewCache(cart2sph.WithZeroSmall())

	if _, err := cache.CoeffsForL(3); err != nil {
		fmt.Println("error:", err)

		return
	}
	if _, err := cache.CoeffsForL(3); err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("memoized shells:", cache.Len())
	// Output:
	// memoized shells: 1
}
