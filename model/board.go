package model

import (
	"crypto/md5"
	"fmt"

	"github.com/sheikhrachel/go-life-board/rules"
)

// Board is a finite, non-wrapping Game of Life board.
//
// A Board is not safe for concurrent use. Callers that share one across
// goroutines must serialise Advance against every other method.
type Board struct {
	numRows    int
	numColumns int
	cells      [][]bool
	generation int
	pool       *GridPool
}

// Option configures a Board at construction
type Option func(*Board)

// WithPool makes Advance reuse grid buffers from pool
func WithPool(pool *GridPool) Option {
	return func(b *Board) {
		b.pool = pool
	}
}

// New validates grid and builds a Board holding a copy of it.
//
// An empty grid yields a 0x0 board. Otherwise every row must have the same
// length as the first one; the first row that does not fails construction
// with a *DimensionMismatchError.
func New(grid [][]bool, opts ...Option) (*Board, error) {
	b := &Board{numRows: len(grid)}
	if b.numRows > 0 {
		b.numColumns = len(grid[0])
	}

	for i, row := range grid {
		if len(row) != b.numColumns {
			return nil, &DimensionMismatchError{Row: i, Expected: b.numColumns, Got: len(row)}
		}
	}

	for _, opt := range opts {
		opt(b)
	}

	b.cells = b.newGrid()
	for i, row := range grid {
		copy(b.cells[i], row)
	}
	return b, nil
}

// NumRows returns the number of rows of the board
func (b *Board) NumRows() int {
	return b.numRows
}

// NumColumns returns the number of columns of the board
func (b *Board) NumColumns() int {
	return b.numColumns
}

// Generation returns how many times the board has been advanced
func (b *Board) Generation() int {
	return b.generation
}

// IsAlive returns the state of the cell at (row, col). Coordinates must be in bounds.
func (b *Board) IsAlive(row, col int) bool {
	return b.cells[row][col]
}

// NeighborStates returns the states of the in-bounds cells touching (row, col).
//
// Order: the row above left to right, then left and right on the same row,
// then the row below left to right. Cells outside the board are skipped, so
// corners yield 3 states, edges 5 and interior cells 8.
func (b *Board) NeighborStates(row, col int) []bool {
	var (
		hasLeft  = col > 0
		hasRight = col < b.numColumns-1
		hasAbove = row > 0
		hasBelow = row < b.numRows-1

		states = make([]bool, 0, 8)
	)

	if hasAbove {
		if hasLeft {
			states = append(states, b.cells[row-1][col-1])
		}
		states = append(states, b.cells[row-1][col])
		if hasRight {
			states = append(states, b.cells[row-1][col+1])
		}
	}

	if hasLeft {
		states = append(states, b.cells[row][col-1])
	}
	if hasRight {
		states = append(states, b.cells[row][col+1])
	}

	if hasBelow {
		if hasLeft {
			states = append(states, b.cells[row+1][col-1])
		}
		states = append(states, b.cells[row+1][col])
		if hasRight {
			states = append(states, b.cells[row+1][col+1])
		}
	}

	return states
}

// AliveNeighborCount counts the live cells among NeighborStates(row, col)
func (b *Board) AliveNeighborCount(row, col int) (count int) {
	for _, alive := range b.NeighborStates(row, col) {
		if alive {
			count++
		}
	}
	return
}

// WillSurvive reports whether the cell at (row, col) is alive in the next generation
func (b *Board) WillSurvive(row, col int) bool {
	return rules.Survives(b.AliveNeighborCount(row, col), b.IsAlive(row, col))
}

// Advance moves the board to the next generation.
//
// Every next state is computed from the current grid into a separate buffer,
// which then replaces the current grid in one assignment.
func (b *Board) Advance() {
	next := b.newGrid()
	for row := range b.numRows {
		for col := range b.numColumns {
			next[row][col] = b.WillSurvive(row, col)
		}
	}

	prev := b.cells
	b.cells = next
	b.generation++

	if b.pool != nil {
		b.pool.Put(prev)
	}
}

// Snapshot returns a copy of the current grid
func (b *Board) Snapshot() [][]bool {
	out := make([][]bool, b.numRows)
	for i, row := range b.cells {
		out[i] = append(make([]bool, 0, b.numColumns), row...)
	}
	return out
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for _, row := range b.cells {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 digest of the board's dimensions and cells
func (b *Board) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", b.numRows, b.numColumns)
	for _, row := range b.cells {
		for _, alive := range row {
			if alive {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Equal reports whether other has the same dimensions and cells
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.numRows != other.numRows || b.numColumns != other.numColumns {
		return false
	}
	for row := range b.numRows {
		for col := range b.numColumns {
			if b.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

func (b *Board) newGrid() [][]bool {
	if b.pool != nil {
		return b.pool.Get(b.numRows, b.numColumns)
	}
	return EmptyGrid(b.numRows, b.numColumns)
}
