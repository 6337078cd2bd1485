package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridPool_GetIsCleared(t *testing.T) {
	pool := NewGridPool()
	grid := pool.Get(3, 4)
	assert.Equal(t, EmptyGrid(3, 4), grid)

	grid[1][2] = true
	pool.Put(grid)

	for _, dims := range [][2]int{{3, 4}, {2, 2}, {5, 6}, {1, 0}} {
		got := pool.Get(dims[0], dims[1])
		assert.Len(t, got, dims[0])
		for _, row := range got {
			assert.Len(t, row, dims[1])
			assert.NotContains(t, row, true)
		}
		pool.Put(got)
	}
}
