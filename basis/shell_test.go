package basis_test

import (
	"testing"

	"github.com/katalvlaran/cartsph/basis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// water returns STO-3G-style shells for H2O in a fixed geometry.
func water(t *testing.T) basis.Shells {
	t.Helper()

	set, err := basis.ParseSet([]byte(miniSet))
	require.NoError(t, err)

	atoms := []string{"O", "H", "H"}
	coords := []float64{
		0, 0, 0.2217,
		0, 1.4309, -0.8867,
		0, -1.4309, -0.8867,
	}

	shells, err := basis.ShellsWithBasis(atoms, coords, set)
	require.NoError(t, err)

	return shells
}

// TestShellsWithBasis_Order: shells come out atom-by-atom in set order —
// the order integral blocks are indexed by.
func TestShellsWithBasis_Order(t *testing.T) {
	shells := water(t)
	require.Len(t, shells, 5) // O: s, s, p; H: s; H: s

	assert.Equal(t, []int{0, 0, 1, 0, 0}, []int{
		shells[0].L, shells[1].L, shells[2].L, shells[3].L, shells[4].L,
	})
	assert.Equal(t, []int{0, 0, 0, 1, 2}, []int{
		shells[0].CenterIndex, shells[1].CenterIndex, shells[2].CenterIndex,
		shells[3].CenterIndex, shells[4].CenterIndex,
	})

	assert.Equal(t, 8, shells[0].AtomicNum)
	assert.Equal(t, 1, shells[3].AtomicNum)
	assert.Equal(t, [3]float64{0, 1.4309, -0.8867}, shells[3].Center)
	assert.Len(t, shells[2].Exponents, 3)
	assert.Len(t, shells[2].Coefficients, 3)
}

func TestShells_Sizes(t *testing.T) {
	shells := water(t)

	// Four s shells (1 component each) plus one p shell (3 components).
	assert.Equal(t, 7, shells.CartSize())
	assert.Equal(t, 7, shells.SphSize())
	assert.Equal(t, 1, shells.MaxL())

	var empty basis.Shells
	assert.Equal(t, 0, empty.CartSize())
	assert.Equal(t, 0, empty.SphSize())
	assert.Equal(t, -1, empty.MaxL())
}

func TestShells_SphTransforms(t *testing.T) {
	shells := water(t)

	family, err := shells.SphTransforms()
	require.NoError(t, err)
	require.Len(t, family, 2) // l = 0, 1

	r, c := family[1].Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)

	var empty basis.Shells
	family, err = empty.SphTransforms()
	require.NoError(t, err)
	assert.Empty(t, family)
}

func TestShellsWithBasis_Errors(t *testing.T) {
	set, err := basis.ParseSet([]byte(miniSet))
	require.NoError(t, err)

	_, err = basis.ShellsWithBasis([]string{"H"}, []float64{0, 0}, set)
	assert.ErrorIs(t, err, basis.ErrCoordsShape)

	_, err = basis.ShellsWithBasis([]string{"Q"}, []float64{0, 0, 0}, set)
	assert.ErrorIs(t, err, basis.ErrUnknownElement)

	_, err = basis.ShellsWithBasis([]string{"C"}, []float64{0, 0, 0}, set)
	assert.ErrorIs(t, err, basis.ErrElementMissing)
}
