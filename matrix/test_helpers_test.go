// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/bytegrid/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At-based paths in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFrom wraps buf as an r×c *Dense or fails the test.
func MustFrom(t testing.TB, buf []uint8, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(buf, r, c)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) uint8 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
