package Bench

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(string(k), func(t *testing.T) {
			data, err := Generate(k, 1000, 500, 7)
			require.NoError(t, err)
			require.Len(t, data, 1000)
			for _, v := range data {
				require.True(t, v >= 0 && v < 500, "key %d out of range", v)
			}
			again, err := Generate(k, 1000, 500, 7)
			require.NoError(t, err)
			assert.Equal(t, data, again)
		})
	}
}

func TestGenerate_Order(t *testing.T) {
	asc, err := Generate(Ascending, 200, 1000, 1)
	require.NoError(t, err)
	assert.True(t, slices.IsSorted(asc))

	desc, err := Generate(Descending, 200, 1000, 1)
	require.NoError(t, err)
	slices.Reverse(desc)
	assert.Equal(t, asc, desc)
}

func TestGenerate_Skewed(t *testing.T) {
	data, err := Generate(Skewed, 10000, 1<<20, 3)
	require.NoError(t, err)
	low := 0
	for _, v := range data {
		if v < 1<<18 {
			low++
		}
	}
	// P(u^3 < 1/4) = 0.63
	assert.Greater(t, low, len(data)/2)
}

func TestGenerate_Invalid(t *testing.T) {
	_, err := Generate("zipf", 10, 10, 0)
	assert.Error(t, err)
	_, err = Generate(Uniform, 10, 0, 0)
	assert.Error(t, err)
	data, err := Generate(Uniform, 0, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, data)
}
