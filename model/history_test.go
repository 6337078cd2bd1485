package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_DetectsStillLife(t *testing.T) {
	grid := EmptyGrid(4, 4)
	Place(grid, Block(), 1, 1)
	b := mustBoard(t, grid)
	h := NewHistory(3)

	h.Record(b.Hash())
	b.Advance()
	assert.Equal(t, 1, h.Period(b.Hash()))
	assert.True(t, h.IsStagnant(b.Hash()))
}

func TestHistory_DetectsBlinker(t *testing.T) {
	grid := EmptyGrid(5, 5)
	Place(grid, Blinker(), 2, 1)
	b := mustBoard(t, grid)
	h := NewHistory(3)

	h.Record(b.Hash())
	b.Advance()
	assert.False(t, h.IsStagnant(b.Hash()))
	h.Record(b.Hash())
	b.Advance()
	assert.Equal(t, 2, h.Period(b.Hash()))
}

func TestHistory_BoundedSize(t *testing.T) {
	h := NewHistory(2)
	h.Record("a")
	h.Record("b")
	h.Record("c")
	assert.Equal(t, 2, h.Len())
	assert.Zero(t, h.Period("a"))
	assert.Equal(t, 2, h.Period("b"))
	assert.Equal(t, 1, h.Period("c"))

	assert.Equal(t, 1, NewHistory(0).size)
}
