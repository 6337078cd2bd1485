package model

import "sync"

// GridPool recycles cell buffers between generations
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([][]bool)
			},
		},
	}
}

// Get returns an all-dead rows x cols grid, reusing a pooled buffer when one fits
func (p *GridPool) Get(rows, cols int) [][]bool {
	buf := p.pool.Get().(*[][]bool)
	grid := *buf

	// Resize if needed
	if cap(grid) < rows {
		grid = make([][]bool, rows)
	}
	grid = grid[:rows]
	for i := range grid {
		if cap(grid[i]) < cols {
			grid[i] = make([]bool, cols)
			continue
		}
		grid[i] = grid[i][:cols]
		clear(grid[i])
	}
	return grid
}

// Put hands a grid back to the pool. The caller must not use it afterwards.
func (p *GridPool) Put(grid [][]bool) {
	if grid == nil {
		return
	}
	p.pool.Put(&grid)
}

// EmptyGrid allocates an all-dead rows x cols grid
func EmptyGrid(rows, cols int) [][]bool {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return cells
}
