package basis_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/cartsph/basis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// miniSet is a trimmed STO-3G-style file: hydrogen with one contracted s
// shell, oxygen with an s shell carrying two contraction rows (general
// contraction) and a separate p shell.
const miniSet = `{
  "elements": {
    "1": {
      "electron_shells": [
        {
          "angular_momentum": [0],
          "exponents": ["3.425250914", "0.6239137298", "0.1688554040"],
          "coefficients": [["0.1543289673", "0.5353281423", "0.4446345422"]]
        }
      ]
    },
    "8": {
      "electron_shells": [
        {
          "angular_momentum": [0],
          "exponents": ["130.7093200", "23.80886605", "6.443608313"],
          "coefficients": [
            ["0.1543289673", "0.5353281423", "0.4446345422"],
            ["-0.09996722919", "0.3995128261", "0.7001154689"]
          ]
        },
        {
          "angular_momentum": [1],
          "exponents": ["5.033151319", "1.169596125", "0.3803889600"],
          "coefficients": [["0.1559162750", "0.6076837186", "0.3919573931"]]
        }
      ]
    }
  }
}`

func TestParseSet(t *testing.T) {
	set, err := basis.ParseSet([]byte(miniSet))
	require.NoError(t, err)

	h, err := set.Shells(1)
	require.NoError(t, err)
	require.Len(t, h, 1)
	assert.Equal(t, 0, h[0].L)
	assert.InDelta(t, 3.425250914, h[0].Exponents[0], 1e-12)
	assert.InDelta(t, 0.4446345422, h[0].Coefficients[2], 1e-12)

	// The general contraction flattens into one ShellDef per row.
	o, err := set.Shells(8)
	require.NoError(t, err)
	require.Len(t, o, 3)
	assert.Equal(t, 0, o[0].L)
	assert.Equal(t, 0, o[1].L)
	assert.Equal(t, 1, o[2].L)
	assert.InDelta(t, -0.09996722919, o[1].Coefficients[0], 1e-12)
	assert.Equal(t, o[0].Exponents, o[1].Exponents, "rows share exponents")

	_, err = set.Shells(6)
	assert.ErrorIs(t, err, basis.ErrElementMissing)
}

func TestParseSet_Rejections(t *testing.T) {
	cases := map[string]struct {
		payload string
		want    error
	}{
		"sp shell": {
			payload: `{"elements":{"8":{"electron_shells":[
				{"angular_momentum":[0,1],"exponents":["1.0"],"coefficients":[["1.0"]]}]}}}`,
			want: basis.ErrSPShell,
		},
		"negative L": {
			payload: `{"elements":{"1":{"electron_shells":[
				{"angular_momentum":[-1],"exponents":["1.0"],"coefficients":[["1.0"]]}]}}}`,
			want: basis.ErrNegativeShellL,
		},
		"bad float": {
			payload: `{"elements":{"1":{"electron_shells":[
				{"angular_momentum":[0],"exponents":["one"],"coefficients":[["1.0"]]}]}}}`,
			want: basis.ErrBadNumber,
		},
		"row length mismatch": {
			payload: `{"elements":{"1":{"electron_shells":[
				{"angular_momentum":[0],"exponents":["1.0","2.0"],"coefficients":[["1.0"]]}]}}}`,
			want: basis.ErrShellShape,
		},
		"non-numeric element key": {
			payload: `{"elements":{"oxygen":{"electron_shells":[]}}}`,
			want:    basis.ErrBadNumber,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := basis.ParseSet([]byte(tc.payload))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := basis.ParseSet([]byte("{not json"))
	assert.Error(t, err)
}

func TestLoadSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mini.json")
	require.NoError(t, os.WriteFile(path, []byte(miniSet), 0o644))

	set, err := basis.LoadSet(path)
	require.NoError(t, err)
	assert.Len(t, set, 2)

	_, err = basis.LoadSet(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestAtomicNumber(t *testing.T) {
	for symbol, want := range map[string]int{
		"H": 1, "h": 1, " He ": 2, "o": 8, "Fe": 26, "og": 118,
	} {
		z, err := basis.AtomicNumber(symbol)
		require.NoError(t, err, symbol)
		assert.Equal(t, want, z, symbol)
	}

	_, err := basis.AtomicNumber("Xx")
	assert.ErrorIs(t, err, basis.ErrUnknownElement)

	s, err := basis.Symbol(26)
	require.NoError(t, err)
	assert.Equal(t, "Fe", s)

	_, err = basis.Symbol(0)
	assert.ErrorIs(t, err, basis.ErrUnknownElement)
	_, err = basis.Symbol(119)
	assert.ErrorIs(t, err, basis.ErrUnknownElement)
}
