package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dimaq12/noguess-mines/internal/board"
)

func TestResolveMineSpecRequiresExactlyOneSource(t *testing.T) {
	_, err := resolveMineSpec(0, 0)
	require.Error(t, err)

	_, err = resolveMineSpec(10, 0.1)
	require.Error(t, err)
}

func TestResolveMineSpecPrefersFixedCount(t *testing.T) {
	spec, err := resolveMineSpec(10, 0)
	require.NoError(t, err)
	require.Equal(t, board.FixedCount(10), spec)
}

func TestResolveMineSpecFallsBackToDensity(t *testing.T) {
	spec, err := resolveMineSpec(0, 0.15)
	require.NoError(t, err)
	require.Equal(t, board.FractionalDensity(0.15), spec)
}
