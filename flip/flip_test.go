// SPDX-License-Identifier: MIT
// Package flip_test contains unit and property tests for H and V.

package flip_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/bytegrid/flip"
	"github.com/katalvlaran/bytegrid/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type, forcing the At fallback.
type hide struct{ matrix.Matrix }

// brokenAt fails every read after the first n.
type brokenAt struct {
	matrix.Matrix
	n int
}

var errRead = errors.New("read failed")

func (b *brokenAt) At(i, j int) (uint8, error) {
	if b.n == 0 {
		return 0, errRead
	}
	b.n--
	return b.Matrix.At(i, j)
}

type flipFunc func(matrix.Matrix) (*matrix.Dense, error)

var kernels = []struct {
	name string
	fn   flipFunc
}{
	{"H", flip.H},
	{"V", flip.V},
}

func mustFrom(t testing.TB, buf []uint8, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(buf, r, c)
	require.NoError(t, err)
	return m
}

// randDense fills an r×c matrix from a fixed seed.
func randDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	buf := make([]uint8, r*c)
	for k := range buf {
		buf[k] = uint8(rng.Intn(256))
	}
	return mustFrom(t, buf, r, c)
}

// shapes covers degenerate, single row/col, square and tall/wide inputs.
var shapes = [][2]int{
	{0, 0}, {0, 3}, {3, 0}, {1, 1}, {1, 5}, {5, 1}, {2, 3}, {4, 4}, {7, 2}, {3, 8},
}

// apply runs fn on both the Dense fast path and the hidden fallback path,
// checks they agree, and returns the result.
func apply(t *testing.T, fn flipFunc, m *matrix.Dense) *matrix.Dense {
	t.Helper()
	fast, err := fn(m)
	require.NoError(t, err)
	slow, err := fn(hide{m})
	require.NoError(t, err)
	require.True(t, fast.Equal(slow), "fast path and fallback disagree:\n%s\n%s", fast, slow)
	return fast
}

func TestConcreteScenarios(t *testing.T) {
	in := mustFrom(t, []uint8{1, 2, 3, 4, 5, 6}, 2, 3)

	h := apply(t, flip.H, in)
	require.Equal(t, []uint8{3, 2, 1, 6, 5, 4}, h.Raw())

	v := apply(t, flip.V, in)
	require.Equal(t, []uint8{4, 5, 6, 1, 2, 3}, v.Raw())

	one := mustFrom(t, []uint8{7}, 1, 1)
	for _, k := range kernels {
		require.Equal(t, []uint8{7}, apply(t, k.fn, one).Raw(), k.name)
	}
}

func TestIndexMapping(t *testing.T) {
	m := randDense(t, 5, 6, 11)
	h := apply(t, flip.H, m)
	v := apply(t, flip.V, m)
	for i := 0; i < 5; i++ {
		for j := 0; j < 6; j++ {
			want, err := m.At(i, 6-1-j)
			require.NoError(t, err)
			got, err := h.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want, got, "H(%d,%d)", i, j)

			want, err = m.At(5-1-i, j)
			require.NoError(t, err)
			got, err = v.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want, got, "V(%d,%d)", i, j)
		}
	}
}

func TestProperties(t *testing.T) {
	for idx, sh := range shapes {
		r, c := sh[0], sh[1]
		m := randDense(t, r, c, int64(1000+idx))
		orig := m.Clone()

		t.Run(fmt.Sprintf("%dx%d", r, c), func(t *testing.T) {
			for _, k := range kernels {
				once := apply(t, k.fn, m)

				// shape preserved
				require.Equal(t, r, once.Rows(), k.name)
				require.Equal(t, c, once.Cols(), k.name)

				// permutation of the input cells
				require.Equal(t, histogram(m.Raw()), histogram(once.Raw()), k.name)

				// double flip is the identity
				twice := apply(t, k.fn, once)
				require.True(t, m.Equal(twice), k.name)

				// input untouched
				require.True(t, m.Equal(orig), k.name)
			}

			// the two axes commute
			hv := apply(t, flip.H, apply(t, flip.V, m))
			vh := apply(t, flip.V, apply(t, flip.H, m))
			require.True(t, hv.Equal(vh))
		})
	}
}

func TestDegenerateShapes(t *testing.T) {
	empty := mustFrom(t, nil, 0, 0)
	for _, k := range kernels {
		out := apply(t, k.fn, empty)
		r, c := out.Shape()
		require.Equal(t, 0, r)
		require.Equal(t, 0, c)
	}

	row := randDense(t, 1, 9, 3)
	require.True(t, row.Equal(apply(t, flip.V, row)))

	col := randDense(t, 9, 1, 4)
	require.True(t, col.Equal(apply(t, flip.H, col)))
}

func TestResultIsFresh(t *testing.T) {
	m := mustFrom(t, []uint8{1, 2, 3, 4}, 2, 2)
	for _, k := range kernels {
		out, err := k.fn(m)
		require.NoError(t, err)
		require.NoError(t, out.Set(0, 0, 99))
		require.Equal(t, []uint8{1, 2, 3, 4}, m.Raw(), k.name)
	}

	// a 1-wide H result is equal to, not the same as, its input
	col := mustFrom(t, []uint8{1, 2}, 2, 1)
	out, err := flip.H(col)
	require.NoError(t, err)
	require.NoError(t, out.Set(0, 0, 50))
	require.Equal(t, []uint8{1, 2}, col.Raw())
}

func TestNilInput(t *testing.T) {
	var typedNil *matrix.Dense
	for _, k := range kernels {
		_, err := k.fn(nil)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, k.name)

		_, err = k.fn(typedNil)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, k.name)
	}
}

func TestFallbackPropagatesReadErrors(t *testing.T) {
	m := randDense(t, 3, 3, 5)
	for _, k := range kernels {
		_, err := k.fn(&brokenAt{Matrix: m, n: 4})
		require.ErrorIs(t, err, errRead, k.name)
	}
}

func TestLongNames(t *testing.T) {
	m := randDense(t, 3, 4, 8)

	h1, err := flip.H(m)
	require.NoError(t, err)
	h2, err := flip.Horizontal(m)
	require.NoError(t, err)
	require.True(t, h1.Equal(h2))

	v1, err := flip.V(m)
	require.NoError(t, err)
	v2, err := flip.Vertical(m)
	require.NoError(t, err)
	require.True(t, v1.Equal(v2))
}

func histogram(buf []uint8) [256]int {
	var h [256]int
	for _, b := range buf {
		h[b]++
	}
	return h
}
